package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/opiniao/pkg/openapi"
	"github.com/JaimeStill/opiniao/pkg/routes"
)

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}
}

func groups() []routes.Group {
	return []routes.Group{
		{
			Tags: []string{"Analysis"},
			Routes: []routes.Route{
				{Method: "POST", Pattern: "/analyze", Handler: reply("analyze"), OpenAPI: &openapi.Operation{Summary: "Analyze"}},
				{Method: "GET", Pattern: "/status", Handler: reply("status")},
			},
		},
		{
			Prefix: "/analyses",
			Tags:   []string{"History"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: reply("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			},
			Children: []routes.Group{
				{
					Routes: []routes.Route{
						{Method: "GET", Pattern: "/{id}", Handler: reply("find"), OpenAPI: &openapi.Operation{Summary: "Find", Tags: []string{"Lookup"}}},
					},
				},
			},
		},
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, groups()...)

	tests := []struct {
		method, path, want string
	}{
		{"POST", "/analyze", "analyze"},
		{"GET", "/status", "status"},
		{"GET", "/analyses", "list"},
		{"GET", "/analyses/42", "find"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	spec := openapi.NewSpec("test", "0.0.0")
	routes.Describe(spec, "/api/", groups()...)

	if _, ok := spec.Paths["/api/status"]; ok {
		t.Error("routes without OpenAPI metadata must not be documented")
	}

	analyze := spec.Paths["/api/analyze"]
	if analyze == nil || analyze.Post == nil || analyze.Post.Summary != "Analyze" {
		t.Fatalf("analyze path = %+v", analyze)
	}
	if len(analyze.Post.Tags) != 1 || analyze.Post.Tags[0] != "Analysis" {
		t.Errorf("analyze tags = %v", analyze.Post.Tags)
	}

	find := spec.Paths["/api/analyses/{id}"]
	if find == nil || find.Get == nil {
		t.Fatal("nested route not documented")
	}
	if find.Get.Tags[0] != "Lookup" {
		t.Errorf("explicit tags should win, got %v", find.Get.Tags)
	}

	list := spec.Paths["/api/analyses"]
	if list == nil || list.Get.Tags[0] != "History" {
		t.Errorf("list = %+v", list)
	}
}
