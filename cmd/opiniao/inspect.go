package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/opiniao/pkg/artifacts"
	"github.com/JaimeStill/opiniao/pkg/formatting"
)

type inspection struct {
	Source     string           `json:"source"`
	Files      []artifacts.Info `json:"files"`
	Vocabulary int              `json:"vocabulary"`
	NgramRange [2]int           `json:"ngram_range"`
	Norm       string           `json:"norm"`
	IDF        bool             `json:"idf"`
	Classifier string           `json:"classifier"`
	Classes    []int            `json:"classes"`
	LoadTime   string           `json:"load_time"`
}

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Load and describe the configured model artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, infra, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			files, err := infra.Loader.Describe(cmd.Context())
			if err != nil {
				return err
			}

			start := time.Now()
			b, err := infra.Loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			in := inspection{
				Source:     b.Source,
				Files:      files,
				Vocabulary: b.Vectorizer.Dim(),
				NgramRange: b.Vectorizer.NgramRange,
				Norm:       b.Vectorizer.Norm,
				IDF:        len(b.Vectorizer.IDF) > 0,
				Classifier: b.Classifier.Kind(),
				Classes:    b.Classifier.Classes(),
				LoadTime:   time.Since(start).Round(time.Millisecond).String(),
			}
			if in.Norm == "" {
				in.Norm = "l2"
			}

			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(in)
			}
			writeInspection(cmd.OutOrStdout(), in)
			return nil
		},
	}
}

func writeInspection(w io.Writer, in inspection) {
	fmt.Fprintf(w, "source      %s\n", in.Source)
	for _, f := range in.Files {
		fmt.Fprintf(w, "file        %s (%s, %s)\n", f.Name, formatting.FormatBytes(f.Size, 1), f.Modified.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "vocabulary  %d terms, ngram %d-%d, norm %s, idf %t\n", in.Vocabulary, in.NgramRange[0], in.NgramRange[1], in.Norm, in.IDF)
	fmt.Fprintf(w, "classifier  %s, classes %v\n", in.Classifier, in.Classes)
	fmt.Fprintf(w, "load time   %s\n", in.LoadTime)
}
