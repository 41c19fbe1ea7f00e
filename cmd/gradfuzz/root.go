package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gradfuzz",
	Short: "Differential tester for automatic differentiation backends",
	Long: `gradfuzz generates random closed-form expressions from byte streams,
differentiates each one with a forward-mode, a reverse-mode, and a
symbolic ground-truth backend, and reports any gradient disagreement
beyond tolerance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
}
