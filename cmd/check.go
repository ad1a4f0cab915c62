package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pdfquiz/internal/quizgen"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the shape of a question array read from stdin",
	Long: `Read a JSON array of questions (pdfquiz output, or a model reply with a
fenced json block) on stdin and report records that do not have a question,
four distinct options and an answer matching one of them.

Exits 1 when any record fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		report, err := quizgen.Check(data)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), report)
		if !report.OK() {
			return fmt.Errorf("%d of %d questions failed the check", failedCount(report), report.Total)
		}
		return nil
	},
}

func printReport(w io.Writer, r quizgen.Report) {
	source := string(r.Source)
	if source == "" {
		source = "-"
	}
	fmt.Fprintf(w, "Source:     %s\n", source)
	fmt.Fprintf(w, "Questions:  %d\n", r.Total)
	if r.SchemaErr != nil {
		fmt.Fprintf(w, "Schema:     %s\n", firstLine(r.SchemaErr.Error()))
	} else {
		fmt.Fprintln(w, "Schema:     ok")
	}

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "\nAll questions passed.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-5s  %-12s  %s\n", "#", "Check", "Problem")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, is := range r.Issues {
		fmt.Fprintf(w, "%-5d  %-12s  %s\n", is.Index+1, is.Validator, is.Message)
	}
}

func failedCount(r quizgen.Report) int {
	seen := make(map[int]bool, len(r.Issues))
	for _, is := range r.Issues {
		seen[is.Index] = true
	}
	return len(seen)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
