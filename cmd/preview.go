package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pdfquiz/internal/llm"
	"github.com/abhisek/pdfquiz/internal/pdftext"
	"github.com/abhisek/pdfquiz/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.pdf>",
	Short: "Generate questions for a PDF and answer them in the terminal",
	Long: `Generate questions for a PDF file and take the quiz interactively.

A developer tool for judging question quality. Unlike the default command it
reports failures instead of printing an empty array.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", quizgen.DefaultQuestionCount, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", count)
	}
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read PDF: %w", err)
	}
	text, err := pdftext.Extract(data)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%s has no extractable text", args[0])
	}

	logger, cfg := loadEnv(cmd)
	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	fmt.Fprintf(out, "Document: %s (%d characters)\n", args[0], len(text))
	fmt.Fprintf(out, "Generating %d questions with %s...\n\n", count, provider.ModelID())

	qcfg := quizgen.DefaultConfig()
	qcfg.Count = count
	res := quizgen.New(provider, qcfg, logger).Generate(ctx, text)
	if !res.OK() {
		return fmt.Errorf("%s failed: %w", res.Stage, res.Err)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	var correct, asked int

	for i, q := range res.Questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n", i+1, len(res.Questions))
		fmt.Fprintln(out, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+j, opt)
		}

		want, known := quizgen.AnswerIndex(q)

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			continue
		}
		asked++

		got, ok := quizgen.AnswerIndex(quizgen.Question{Options: q.Options, Answer: answer})
		switch {
		case !known:
			fmt.Fprintf(out, "Answer key %q matches no option.\n", q.Answer)
		case ok && got == want:
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		default:
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %c) %s\n", 'A'+want, q.Options[want])
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, asked)
	return nil
}
