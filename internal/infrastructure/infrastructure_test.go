package infrastructure_test

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/internal/infrastructure"
)

func load(t *testing.T, toml string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func newInfra(t *testing.T, cfg *config.Config) *infrastructure.Infrastructure {
	t.Helper()
	infra, err := infrastructure.NewWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return infra
}

func TestDefaults(t *testing.T) {
	infra := newInfra(t, load(t, ""))

	if infra.Normalizer == nil || infra.NormalizerErr != nil {
		t.Errorf("normalizer = %v, err = %v", infra.Normalizer, infra.NormalizerErr)
	}
	if infra.Storage != nil {
		t.Error("storage should be nil for directory artifacts")
	}
	if infra.Database != nil {
		t.Error("database should be nil while history is disabled")
	}
	if infra.Language == nil {
		t.Error("language detection is on by default")
	}
}

func TestLanguageDisabled(t *testing.T) {
	infra := newInfra(t, load(t, "[language]\nenabled = false\n"))
	if infra.Language != nil {
		t.Error("language detector should be nil when disabled")
	}
}

func TestMissingStopwordsFileIsNotFatal(t *testing.T) {
	infra := newInfra(t, load(t, "[normalizer]\nstopwords_file = \"/nonexistent/stopwords.txt\"\n[language]\nenabled = false\n"))

	if infra.NormalizerErr == nil {
		t.Fatal("expected normalizer error")
	}
	if infra.Normalizer != nil {
		t.Error("normalizer should be nil after a resource failure")
	}
}

func TestReadiness(t *testing.T) {
	models := t.TempDir()
	os.WriteFile(filepath.Join(models, "vectorizer.json"), []byte(`{"vocabulary": {"bom": 0}}`), 0644)
	os.WriteFile(filepath.Join(models, "classifier.json"), []byte(`{"classes": [0, 1], "coef": [1.0]}`), 0644)

	tests := []struct {
		name      string
		toml      string
		wantReady bool
	}{
		{
			name:      "artifacts present",
			toml:      fmt.Sprintf("[artifacts]\ndir = %q\n[language]\nenabled = false\n", models),
			wantReady: true,
		},
		{
			name:      "artifacts missing",
			toml:      fmt.Sprintf("[artifacts]\ndir = %q\n[language]\nenabled = false\n", t.TempDir()),
			wantReady: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infra := newInfra(t, load(t, tt.toml))
			if err := infra.Start(); err != nil {
				t.Fatalf("start: %v", err)
			}
			infra.Lifecycle.WaitForStartup()

			if got := infra.Lifecycle.Ready(); got != tt.wantReady {
				t.Errorf("ready = %v, want %v", got, tt.wantReady)
			}
			if err := infra.Lifecycle.Shutdown(time.Second); err != nil {
				t.Errorf("shutdown: %v", err)
			}
		})
	}
}
