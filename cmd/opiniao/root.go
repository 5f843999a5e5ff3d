package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/internal/infrastructure"
)

type options struct {
	configPath string
	verbose    bool
	json       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "opiniao",
		Short:        "Sentiment analysis for Portuguese reviews",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.BaseConfigFile, "path to config.toml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log loading progress to stderr")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newInspectCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup loads configuration and infrastructure without starting the lifecycle;
// artifacts are loaded on first use.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *infrastructure.Infrastructure, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	// history is a server concern
	cfg.History.Enabled = false

	infra, err := infrastructure.NewWithLogger(cfg, o.logger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, nil, err
	}
	return cfg, infra, nil
}

func newAnalysis(cfg *config.Config, infra *infrastructure.Infrastructure) analysis.System {
	var language analysis.LanguageDetector
	if infra.Language != nil {
		language = infra.Language
	}
	return analysis.New(
		infra.Normalizer,
		infra.Loader,
		language,
		nil,
		infra.Logger,
		cfg.API.MaxReviewChars(),
	)
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the configured version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Version)
			return nil
		},
	}
}
