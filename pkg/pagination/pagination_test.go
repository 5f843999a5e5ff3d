package pagination_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/JaimeStill/opiniao/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100, MaxSearchLength: 10}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantSize     int
		wantSearch   string
		wantSortSize int
	}{
		{"defaults", "", 1, 20, "", 0},
		{"explicit", "page=3&page_size=10", 3, 10, "", 0},
		{"clamped size", "page_size=1000", 1, 100, "", 0},
		{"negative page", "page=-4", 1, 20, "", 0},
		{"search and sort", "search=+entrega+&sort=-AnalyzedAt,Confidence", 1, 20, "entrega", 2},
		{"search at limit counts characters", "search=p%C3%A9ssimo%C3%A3%C3%A3%C3%A3", 1, 20, "péssimoããã", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req, err := pagination.PageRequestFromQuery(values, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Page != tt.wantPage || req.PageSize != tt.wantSize {
				t.Errorf("page = %d size = %d, want %d and %d", req.Page, req.PageSize, tt.wantPage, tt.wantSize)
			}
			if tt.wantSearch == "" && req.Search != nil {
				t.Errorf("search = %q, want nil", *req.Search)
			}
			if tt.wantSearch != "" && (req.Search == nil || *req.Search != tt.wantSearch) {
				t.Errorf("search = %v, want %q", req.Search, tt.wantSearch)
			}
			if len(req.Sort) != tt.wantSortSize {
				t.Errorf("sort = %v", req.Sort)
			}
		})
	}
}

func TestPageRequestFromQueryInvalid(t *testing.T) {
	for _, q := range []string{"page=two", "page_size=1.5", "search=atendimento+ruim"} {
		values, _ := url.ParseQuery(q)
		if _, err := pagination.PageRequestFromQuery(values, cfg); !errors.Is(err, pagination.ErrInvalidPage) {
			t.Errorf("%s: got %v, want ErrInvalidPage", q, err)
		}
	}
}

func TestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("offset = %d, want 50", got)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantPages int
	}{
		{"empty", 0, 20, 1},
		{"exact", 40, 20, 2},
		{"remainder", 41, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pagination.NewPageResult[string](nil, tt.total, 1, tt.size)
			if r.TotalPages != tt.wantPages {
				t.Errorf("total pages = %d, want %d", r.TotalPages, tt.wantPages)
			}
			if r.Data == nil {
				t.Error("data must not be nil")
			}
		})
	}
}

func TestConfigFinalize(t *testing.T) {
	c := pagination.Config{DefaultPageSize: 200, MaxPageSize: 50}
	if err := c.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}

	t.Setenv("TEST_PAGE_SIZE", "15")
	c = pagination.Config{}
	if err := c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if c.DefaultPageSize != 15 || c.MaxPageSize != 100 || c.MaxSearchLength != 200 {
		t.Errorf("got %+v", c)
	}
}
