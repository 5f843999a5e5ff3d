package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/opiniao/internal/analysis"
)

const barWidth = 30

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   `analyze ["<texto>" | -]`,
		Short: "Classify the sentiment of a review",
		Long: "Classify the sentiment of a review given as arguments, or read from\n" +
			"standard input when no argument or a single - is given.",
		Example: `  opiniao analyze "Produto excelente, chegou rápido"
  echo "Não gostei da entrega" | opiniao analyze --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			review, err := readReview(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			cfg, infra, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			a, err := newAnalysis(cfg, infra).Analyze(cmd.Context(), review)
			if err != nil {
				return err
			}

			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}
			writeAnalysis(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func readReview(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read review: %w", err)
	}
	return string(data), nil
}

func writeAnalysis(w io.Writer, a *analysis.Analysis) {
	if a.Positive() {
		fmt.Fprintf(w, "Positivo (%.1f%% de confiança)\n", a.Confidence*100)
	} else {
		fmt.Fprintf(w, "Negativo (%.1f%% de confiança)\n", a.Confidence*100)
	}

	fmt.Fprintf(w, "  Positivo  %s %5.1f%%\n", bar(a.Probabilities.Positive), a.Probabilities.Positive*100)
	fmt.Fprintf(w, "  Negativo  %s %5.1f%%\n", bar(a.Probabilities.Negative), a.Probabilities.Negative*100)

	normalized := a.Normalized
	if normalized == "" {
		normalized = "(vazio)"
	}
	fmt.Fprintf(w, "Texto normalizado: %s\n", normalized)

	if a.Warning != "" {
		fmt.Fprintf(w, "Aviso: %s\n", a.Warning)
	}
}

func bar(p float64) string {
	filled := min(max(int(p*barWidth+0.5), 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
