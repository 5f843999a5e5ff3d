package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/opiniao/internal/analysis"
)

func writeArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"vectorizer.json": `{"vocabulary": {"excelente": 0, "pessimo": 1}, "idf": [1.0, 1.0]}`,
		"classifier.json": `{"kind": "logistic_regression", "classes": [0, 1], "coef": [4.0, -4.0]}`,
		"config.toml":     fmt.Sprintf("version = \"1.4.0\"\n\n[artifacts]\ndir = %q\n\n[language]\nenabled = false\n", dir),
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(dir, "config.toml")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeText(t *testing.T) {
	cfg := writeArtifacts(t)

	out, err := run(t, "", "analyze", "-c", cfg, "Produto", "EXCELENTE!")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.HasPrefix(out, "Positivo (") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Error("missing probability bars")
	}
	if !strings.Contains(out, "Texto normalizado: produto excelente\n") {
		t.Errorf("missing normalized text:\n%s", out)
	}
}

func TestWriteAnalysisEmptyNormalized(t *testing.T) {
	var out bytes.Buffer
	writeAnalysis(&out, &analysis.Analysis{
		Sentiment:     analysis.SentimentNegative,
		Confidence:    0.6,
		Probabilities: analysis.Probabilities{Negative: 0.6, Positive: 0.4},
	})
	if !strings.Contains(out.String(), "Texto normalizado: (vazio)\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestAnalyzeStdinJSON(t *testing.T) {
	cfg := writeArtifacts(t)

	out, err := run(t, "atendimento péssimo", "analyze", "--json", "-c", cfg)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var a analysis.Analysis
	if err := json.Unmarshal([]byte(out), &a); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if a.Sentiment != analysis.SentimentNegative || a.Normalized != "atendimento pessimo" {
		t.Errorf("analysis = %+v", a)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	cfg := writeArtifacts(t)

	if _, err := run(t, "   ", "analyze", "-c", cfg, "-"); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("got %v, want empty review error", err)
	}
}

func TestInspect(t *testing.T) {
	cfg := writeArtifacts(t)

	out, err := run(t, "", "inspect", "-c", cfg)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"vectorizer.json", "2 terms, ngram 1-1, norm l2, idf true", "logistic_regression, classes [0 1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	cfg := writeArtifacts(t)

	out, err := run(t, "", "version", "-c", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.4.0" {
		t.Errorf("version = %q", out)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		p      float64
		filled int
	}{
		{0, 0},
		{0.5, 15},
		{1, 30},
		{1.2, 30},
	}
	for _, tt := range tests {
		if got := strings.Count(bar(tt.p), "█"); got != tt.filled {
			t.Errorf("bar(%v) filled = %d, want %d", tt.p, got, tt.filled)
		}
	}
}
