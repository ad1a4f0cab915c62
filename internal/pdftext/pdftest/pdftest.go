// Package pdftest builds small PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// DefaultFont is the font dictionary used when a Page sets none.
const DefaultFont = "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>"

// Page is one page of a test document. Its text is drawn with the font
// resource /F1, which points at a font object of the page's own.
type Page struct {
	// Text must not contain unbalanced parentheses or backslashes.
	Text string

	// Font is the font dictionary behind /F1. Empty means DefaultFont.
	Font string
}

// Build writes a minimal uncompressed PDF with one Helvetica text line per
// page.
func Build(pages ...string) []byte {
	ps := make([]Page, len(pages))
	for i, text := range pages {
		ps[i] = Page{Text: text}
	}
	return BuildPages(ps...)
}

// BuildPages writes a minimal uncompressed PDF from pages. Offsets in the
// xref table are computed as the file is written.
func BuildPages(pages ...Page) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	// 1: catalog, 2: page tree, then (page, content, font) triples.
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+3*i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	for i, page := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", 5+3*i, 4+3*i))
		stream := fmt.Sprintf("BT\n/F1 24 Tf\n72 700 Td\n(%s) Tj\nET\n", page.Text)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
		font := page.Font
		if font == "" {
			font = DefaultFont
		}
		obj(font)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}
