package vectorizer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/JaimeStill/opiniao/pkg/vectorizer"
)

func fitted(t *testing.T, v *vectorizer.Vectorizer) *vectorizer.Vectorizer {
	t.Helper()
	if err := v.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPrepareValidation(t *testing.T) {
	tests := []struct {
		name    string
		v       vectorizer.Vectorizer
		wantErr error
	}{
		{
			name:    "empty vocabulary",
			v:       vectorizer.Vectorizer{},
			wantErr: vectorizer.ErrNotFitted,
		},
		{
			name: "idf length mismatch",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0, "ruim": 1},
				IDF:        []float64{1},
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "duplicate index",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0, "ruim": 0},
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "sparse indices",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0, "ruim": 99999},
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "nan idf",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0, "ruim": 1},
				IDF:        []float64{math.NaN(), 1},
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "infinite idf",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0, "ruim": 1},
				IDF:        []float64{1, math.Inf(1)},
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "unknown norm",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0},
				Norm:       "max",
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "bad ngram range",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0},
				NgramRange: [2]int{2, 1},
			},
			wantErr: vectorizer.ErrInvalid,
		},
		{
			name: "valid",
			v: vectorizer.Vectorizer{
				Vocabulary: map[string]int{"bom": 0, "ruim": 1},
				IDF:        []float64{1.5, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Prepare()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransformTFIDF(t *testing.T) {
	v := fitted(t, &vectorizer.Vectorizer{
		Vocabulary: map[string]int{"otimo": 0, "bem": 1, "ruim": 2},
		IDF:        []float64{2, 1, 3},
	})

	vec, err := v.Transform("otimo funcionou bem otimo")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	if vec.Dim != 3 {
		t.Errorf("dim: got %d, want 3", vec.Dim)
	}
	if len(vec.Indices) != 2 || vec.Indices[0] != 0 || vec.Indices[1] != 1 {
		t.Fatalf("indices: got %v, want [0 1]", vec.Indices)
	}

	// raw tf-idf: otimo 2*2 = 4, bem 1*1 = 1; l2 norm sqrt(17)
	norm := math.Sqrt(17)
	if !approx(vec.Values[0], 4/norm) {
		t.Errorf("otimo: got %v, want %v", vec.Values[0], 4/norm)
	}
	if !approx(vec.Values[1], 1/norm) {
		t.Errorf("bem: got %v, want %v", vec.Values[1], 1/norm)
	}
}

func TestTransformEmptyText(t *testing.T) {
	v := fitted(t, &vectorizer.Vectorizer{
		Vocabulary: map[string]int{"bom": 0},
	})

	vec, err := v.Transform("")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if vec.NNZ() != 0 {
		t.Errorf("nnz: got %d, want 0", vec.NNZ())
	}
	if vec.Dim != 1 {
		t.Errorf("dim: got %d, want 1", vec.Dim)
	}
}

func TestTransformOptions(t *testing.T) {
	t.Run("binary counts without norm", func(t *testing.T) {
		v := fitted(t, &vectorizer.Vectorizer{
			Vocabulary: map[string]int{"bom": 0},
			Binary:     true,
			Norm:       "none",
		})
		vec, _ := v.Transform("bom bom bom")
		if !approx(vec.Values[0], 1) {
			t.Errorf("got %v, want 1", vec.Values[0])
		}
	})

	t.Run("sublinear tf", func(t *testing.T) {
		v := fitted(t, &vectorizer.Vectorizer{
			Vocabulary:  map[string]int{"bom": 0},
			SublinearTF: true,
			Norm:        "none",
		})
		vec, _ := v.Transform("bom bom bom")
		if !approx(vec.Values[0], 1+math.Log(3)) {
			t.Errorf("got %v, want %v", vec.Values[0], 1+math.Log(3))
		}
	})

	t.Run("l1 norm", func(t *testing.T) {
		v := fitted(t, &vectorizer.Vectorizer{
			Vocabulary: map[string]int{"bom": 0, "barato": 1},
			Norm:       "l1",
		})
		vec, _ := v.Transform("bom bom barato")
		if !approx(vec.Values[0], 2.0/3) || !approx(vec.Values[1], 1.0/3) {
			t.Errorf("got %v", vec.Values)
		}
	})

	t.Run("bigrams", func(t *testing.T) {
		v := fitted(t, &vectorizer.Vectorizer{
			Vocabulary: map[string]int{"nao gostei": 0, "gostei": 1},
			NgramRange: [2]int{1, 2},
			Norm:       "none",
		})
		vec, _ := v.Transform("nao gostei")
		if vec.NNZ() != 2 {
			t.Fatalf("nnz: got %d, want 2", vec.NNZ())
		}
	})

	t.Run("single character tokens ignored", func(t *testing.T) {
		v := fitted(t, &vectorizer.Vectorizer{
			Vocabulary: map[string]int{"a": 0, "ok": 1},
			Norm:       "none",
		})
		vec, _ := v.Transform("a ok")
		if vec.NNZ() != 1 || vec.Indices[0] != 1 {
			t.Errorf("got indices %v, want [1]", vec.Indices)
		}
	})

	t.Run("custom token pattern", func(t *testing.T) {
		v := fitted(t, &vectorizer.Vectorizer{
			Vocabulary:   map[string]int{"a": 0},
			TokenPattern: `(?u)\b\w+\b`,
			Norm:         "none",
		})
		vec, _ := v.Transform("a a")
		if vec.NNZ() != 1 || !approx(vec.Values[0], 2) {
			t.Errorf("got %v", vec.Values)
		}
	})
}

func TestTransformUnfitted(t *testing.T) {
	var v vectorizer.Vectorizer
	if _, err := v.Transform("bom"); !errors.Is(err, vectorizer.ErrNotFitted) {
		t.Errorf("got %v, want ErrNotFitted", err)
	}
}

func TestDot(t *testing.T) {
	vec := vectorizer.Vector{Dim: 3, Indices: []int{0, 2}, Values: []float64{0.5, 2}}
	if got := vec.Dot([]float64{2, 100, -1}); !approx(got, -1) {
		t.Errorf("got %v, want -1", got)
	}
}
