// Package artifacts loads and validates the fitted vectorizer and classifier
// pair. A successful load is memoized for the life of the Loader; artifacts are
// read-only afterwards and safe to share across requests.
package artifacts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/JaimeStill/opiniao/pkg/classifier"
	"github.com/JaimeStill/opiniao/pkg/lifecycle"
	"github.com/JaimeStill/opiniao/pkg/vectorizer"
)

// Bundle is a validated vectorizer and classifier pair.
type Bundle struct {
	Vectorizer *vectorizer.Vectorizer
	Classifier classifier.Classifier
	Source     string
	LoadedAt   time.Time
}

// Loader memoizes the first successful Bundle load. Failed loads are not
// cached, so a later call retries.
type Loader struct {
	source         Source
	vectorizerName string
	classifierName string
	timeout        time.Duration
	logger         *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	bundle *Bundle
	err    error
}

// NewLoader creates a Loader reading the configured artifact names from src.
func NewLoader(src Source, cfg *Config, logger *slog.Logger) *Loader {
	return &Loader{
		source:         src,
		vectorizerName: cfg.Vectorizer,
		classifierName: cfg.Classifier,
		timeout:        cfg.LoadTimeoutDuration(),
		logger:         logger.With("system", "artifacts"),
	}
}

// Start registers a startup hook that warms the cache so the first review does
// not pay the deserialization cost.
func (l *Loader) Start(lc *lifecycle.Coordinator) error {
	l.logger.Info("starting artifact loader", "source", l.source.String())

	lc.OnStartup(func() {
		if _, err := l.Load(lc.Context()); err != nil {
			l.logger.Error("artifact warm-up failed", "error", err)
		}
	})

	return nil
}

// Load returns the memoized Bundle, loading it on first use. Concurrent first
// calls share a single load. Either both artifacts load and validate or an
// error is returned; a partial Bundle is never exposed.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	if b := l.cached(); b != nil {
		return b, nil
	}

	v, err, _ := l.group.Do("bundle", func() (any, error) {
		if b := l.cached(); b != nil {
			return b, nil
		}

		b, err := l.load(ctx)

		l.mu.Lock()
		defer l.mu.Unlock()
		l.err = err
		if err != nil {
			return nil, err
		}
		l.bundle = b
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Bundle), nil
}

// Describe stats the configured vectorizer and classifier without loading them.
func (l *Loader) Describe(ctx context.Context) ([]Info, error) {
	names := []string{l.vectorizerName, l.classifierName}
	infos := make([]Info, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			info, err := l.source.Stat(gctx, name)
			infos[i] = info
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Source returns the description of the artifact source.
func (l *Loader) Source() string {
	return l.source.String()
}

// Ready reports whether a Bundle has been loaded.
func (l *Loader) Ready() bool {
	return l.cached() != nil
}

// Err returns the error of the most recent failed load, or nil.
func (l *Loader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *Loader) cached() *Bundle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bundle
}

func (l *Loader) load(ctx context.Context) (*Bundle, error) {
	start := time.Now()

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var (
		vec   *vectorizer.Vectorizer
		model *classifier.Model
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := l.loadVectorizer(gctx)
		vec = v
		return err
	})
	g.Go(func() error {
		m, err := read[classifier.Model](gctx, l.source, l.classifierName)
		if err != nil {
			return fmt.Errorf("load classifier %s: %w", l.classifierName, err)
		}
		model = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	clf, err := model.Build()
	if err != nil {
		return nil, fmt.Errorf("load classifier %s: %w", l.classifierName, err)
	}

	if clf.Dim() != vec.Dim() {
		return nil, fmt.Errorf(
			"%w: classifier dimension %d, vectorizer dimension %d",
			ErrIncompatible, clf.Dim(), vec.Dim(),
		)
	}

	b := &Bundle{
		Vectorizer: vec,
		Classifier: clf,
		Source:     l.source.String(),
		LoadedAt:   time.Now(),
	}

	l.logger.Info(
		"artifacts loaded",
		"source", b.Source,
		"vocabulary", vec.Dim(),
		"classifier", clf.Kind(),
		"duration", time.Since(start),
	)

	return b, nil
}

func (l *Loader) loadVectorizer(ctx context.Context) (*vectorizer.Vectorizer, error) {
	v, err := read[vectorizer.Vectorizer](ctx, l.source, l.vectorizerName)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer %s: %w", l.vectorizerName, err)
	}
	if err := v.Prepare(); err != nil {
		return nil, fmt.Errorf("load vectorizer %s: %w", l.vectorizerName, err)
	}
	return v, nil
}

func read[T any](ctx context.Context, src Source, name string) (*T, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return decode[T](rc)
}
