package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pdfquiz/internal/pdftext/pdftest"
	"github.com/abhisek/pdfquiz/internal/quizgen"
)

const twoQuestions = `[
  {"question":"Capital of Italy?","options":["Paris","London","Rome","Berlin"],"answer":"Rome"},
  {"question":"Largest planet?","options":["Mars","Jupiter","Venus","Earth"],"answer":"B"}
]`

func execute(t *testing.T, stdin []byte, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(append([]string{}, args...))
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func useMock(t *testing.T, reply string) {
	t.Helper()
	t.Setenv("QUIZGEN_LLM_PROVIDER", "mock")
	t.Setenv("QUIZGEN_MOCK_RESPONSE", reply)
	t.Setenv("QUIZGEN_LOG_LEVEL", "debug")
}

func TestRoot_PrintsQuestions(t *testing.T) {
	useMock(t, "```json\n"+twoQuestions+"\n```")

	out, _, err := execute(t, pdftest.Build("Hello World"))
	require.NoError(t, err)

	var got []quizgen.Question
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Capital of Italy?", got[0].Question)
}

func TestRoot_InvalidPDF(t *testing.T) {
	useMock(t, twoQuestions)

	out, stderr, err := execute(t, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, stderr, "error extracting text from PDF")
}

func TestRoot_MissingAPIKey(t *testing.T) {
	t.Setenv("QUIZGEN_LLM_PROVIDER", "gemini")
	t.Setenv("QUIZGEN_GEMINI_BACKEND", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("QUIZGEN_GEMINI_API_KEY", "")

	out, stderr, err := execute(t, pdftest.Build("Hello World"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, stderr, "GOOGLE_API_KEY")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, nil, "extra.pdf")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, []byte(twoQuestions), "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Questions:  2")
	assert.Contains(t, out, "All questions passed.")

	bad := `[{"question":"Q","options":["A","B","C"],"answer":"A"}]`
	out, _, err = execute(t, []byte(bad), "check")
	assert.Error(t, err)
	assert.Contains(t, out, "structural")
	assert.Contains(t, out, "expected 4 options, got 3")

	_, _, err = execute(t, []byte("nope"), "check")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	useMock(t, twoQuestions)
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Build("Hello World"), 0o644))

	out, _, err := execute(t, []byte("C\nA\n"), "preview", "--count", "2", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Capital of Italy?")
	assert.Contains(t, out, "C) Rome")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Answer: B) Jupiter")
	assert.Contains(t, out, "Summary: 1/2 correct")
}

func TestPreview_MissingFile(t *testing.T) {
	_, _, err := execute(t, nil, "preview", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestPreview_RejectsNonPositiveCount(t *testing.T) {
	useMock(t, twoQuestions)
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Build("Hello World"), 0o644))

	for _, count := range []string{"0", "-3"} {
		out, _, err := execute(t, nil, "preview", "--count", count, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be at least 1")
		assert.NotContains(t, out, "Generating")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "pdfquiz (devel)\n", out)
}
