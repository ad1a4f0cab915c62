package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/pdfquiz/internal/app"
	"github.com/abhisek/pdfquiz/internal/llm"
	"github.com/abhisek/pdfquiz/internal/logging"
	"github.com/abhisek/pdfquiz/internal/pdftext"
	"github.com/abhisek/pdfquiz/internal/quizgen"
)

var rootCmd = &cobra.Command{
	Use:   "pdfquiz",
	Short: "Generate multiple-choice questions from a PDF",
	Long: `pdfquiz reads a PDF on stdin and prints a JSON array of 15 multiple-choice
questions about its text on stdout. Any failure prints [] and exits 0.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg := loadEnv(cmd)

		p := &app.Pipeline{
			Extractor: pdftext.NewExtractor(logger),
			Connect:   connector(cfg, logger),
			Quiz:      quizgen.DefaultConfig(),
			Logger:    logger,
		}
		if err := p.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			logger.Error("error writing output", "error", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnv reads .env when present, then builds the logger and the LLM
// config from the environment. Variables already set take precedence.
func loadEnv(cmd *cobra.Command) (*slog.Logger, llm.Config) {
	_ = godotenv.Load()

	logger := logging.New(cmd.ErrOrStderr(), os.Getenv("QUIZGEN_LOG_LEVEL"))

	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		logger.Warn("ignoring invalid LLM setting", "error", err)
	}
	return logger, cfg
}

// connector defers provider construction until there is text to send, so
// a missing key only matters for documents that have text.
func connector(cfg llm.Config, logger *slog.Logger) app.ConnectFunc {
	return func(ctx context.Context) (llm.Provider, error) {
		return llm.NewProvider(ctx, cfg, logger)
	}
}
