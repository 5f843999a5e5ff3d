package query_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/opiniao/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "analyses", "a").
		Project("id", "ID").
		Project("review", "Review").
		Project("sentiment", "Sentiment").
		Project("analyzed_at", "AnalyzedAt")
}

func ptr[T any](v T) *T { return &v }

func TestProjectionMap(t *testing.T) {
	p := testProjection()

	if got := p.From(); got != "public.analyses a" {
		t.Errorf("From() = %q", got)
	}
	if got := p.Columns(); got != "a.id, a.review, a.sentiment, a.analyzed_at" {
		t.Errorf("Columns() = %q", got)
	}
	if got := p.Column("Review"); got != "a.review" {
		t.Errorf("Column(Review) = %q", got)
	}
	if got := p.Column("unknown"); got != "unknown" {
		t.Errorf("Column(unknown) = %q", got)
	}
	if p.Has("unknown") {
		t.Error("Has(unknown) = true")
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"Review", []query.SortField{{Field: "Review"}}},
		{"-AnalyzedAt, Review ,", []query.SortField{
			{Field: "AnalyzedAt", Descending: true},
			{Field: "Review"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuilderBuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "AnalyzedAt", Descending: true})
	sql, args := b.BuildPage(2, 10)

	want := "SELECT a.id, a.review, a.sentiment, a.analyzed_at FROM public.analyses a ORDER BY a.analyzed_at DESC LIMIT 10 OFFSET 10"
	if sql != want {
		t.Errorf("BuildPage() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("BuildPage() args = %v, want empty", args)
	}
}

func TestBuilderBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc-123")

	want := "SELECT a.id, a.review, a.sentiment, a.analyzed_at FROM public.analyses a WHERE a.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc-123" {
		t.Errorf("BuildSingle() args = %v", args)
	}
}

func TestBuilderConditions(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	b := query.NewBuilder(testProjection()).
		WhereSearch(ptr("entrega"), "Review").
		WhereEquals("Sentiment", ptr("negative")).
		WhereEquals("Sentiment", (*string)(nil)).
		WhereAtLeast("AnalyzedAt", &since)

	sql, args := b.BuildCount()
	want := "SELECT COUNT(*) FROM public.analyses a WHERE (a.review ILIKE $1) AND a.sentiment = $2 AND a.analyzed_at >= $3"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}
	if len(args) != 3 || args[0] != "%entrega%" {
		t.Errorf("BuildCount() args = %v", args)
	}
}

func TestBuilderOrderByDropsUnknownFields(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "AnalyzedAt", Descending: true}).
		OrderByFields(query.ParseSortFields("Sentiment,-review; DROP TABLE analyses"))

	sql, _ := b.BuildPage(1, 5)
	want := "SELECT a.id, a.review, a.sentiment, a.analyzed_at FROM public.analyses a ORDER BY a.sentiment ASC LIMIT 5 OFFSET 0"
	if sql != want {
		t.Errorf("BuildPage() sql = %q, want %q", sql, want)
	}
}
