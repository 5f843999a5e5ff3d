package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/opiniao/pkg/web"
)

//go:embed testdata
var testFS embed.FS

var (
	scoreView  = web.ViewDef{Template: "score.html", Title: "Score"}
	brokenView = web.ViewDef{Template: "broken.html", Title: "Broken"}
)

func newTemplates(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(
		testFS,
		"testdata/templates/*.html",
		"testdata/templates/views",
		"/app",
		[]web.ViewDef{scoreView, brokenView},
	)
	if err != nil {
		t.Fatalf("NewTemplateSet: %v", err)
	}
	return ts
}

func TestPageHandler(t *testing.T) {
	ts := newTemplates(t)
	h := ts.PageHandler("layout", scoreView, func(*http.Request) any { return 0.875 })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/app/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %s", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>Score</title>", `href="/app/"`, "87.5%"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTemplates(t)

	rec := httptest.NewRecorder()
	ts.ErrorHandler("layout", scoreView, http.StatusNotFound)(rec, httptest.NewRequest("GET", "/x", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestRespondFailures(t *testing.T) {
	ts := newTemplates(t)

	t.Run("unknown view", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ts.Respond(rec, http.StatusOK, "layout", web.ViewDef{Template: "missing.html"}, nil)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rec.Code)
		}
	})

	t.Run("render error writes nothing partial", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ts.Respond(rec, http.StatusOK, "layout", brokenView, 42)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "<title>") {
			t.Errorf("partial page leaked: %s", rec.Body.String())
		}
	})
}

func TestNewTemplateSetMissingView(t *testing.T) {
	_, err := web.NewTemplateSet(
		testFS,
		"testdata/templates/*.html",
		"testdata/templates/views",
		"",
		[]web.ViewDef{{Template: "absent.html"}},
	)
	if err == nil {
		t.Fatal("expected error for missing view template")
	}
}

func TestStaticServer(t *testing.T) {
	h, err := web.StaticServer(testFS, "testdata/static", "/static/")
	if err != nil {
		t.Fatalf("StaticServer: %v", err)
	}

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/static/app.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Error("missing Cache-Control header")
	}
	if !strings.Contains(rec.Body.String(), "margin") {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(testFS, "testdata/public", "robots.txt", "absent.txt")
	if len(routes) != 2 || routes[0].Pattern != "/robots.txt" || routes[0].Method != "GET" {
		t.Fatalf("routes: %+v", routes)
	}

	rec := httptest.NewRecorder()
	routes[0].Handler(rec, httptest.NewRequest("GET", "/robots.txt", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "User-agent") {
		t.Errorf("robots: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	routes[1].Handler(rec, httptest.NewRequest("GET", "/absent.txt", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("absent: got %d, want 404", rec.Code)
	}
}

func TestRouterFallback(t *testing.T) {
	r := web.NewRouter()
	r.Mux().HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.SetFallback(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusNoContent},
		{"/nowhere", http.StatusTeapot},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
		if rec.Code != tt.want {
			t.Errorf("%s: got %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}
