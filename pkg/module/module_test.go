package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/opiniao/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.URL.Path)
	})
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		prefix  string
		wantErr bool
	}{
		{"/api", false},
		{"/app", false},
		{"", true},
		{"api", true},
		{"/", true},
		{"/api/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			err := module.ValidatePrefix(tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.prefix, err, tt.wantErr)
			}
		})
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()

	api := module.New("/api", echoPath())
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "api")
			next.ServeHTTP(w, r)
		})
	})
	router.Mount(api)
	router.Mount(module.New("/app", echoPath()))

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
	router.Redirect("/", "/app")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantModule string
	}{
		{"api subpath", "/api/analyze", http.StatusOK, "/analyze", "api"},
		{"api root", "/api", http.StatusOK, "/", "api"},
		{"trailing slash", "/app/", http.StatusOK, "/", ""},
		{"app nested", "/app/static/app.css", http.StatusOK, "/static/app.css", ""},
		{"native", "/healthz", http.StatusOK, "ok", ""},
		{"prefix lookalike is native", "/apiary", http.StatusNotFound, "", ""},
		{"root redirect", "/", http.StatusSeeOther, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("X-Module"); got != tt.wantModule {
				t.Errorf("module header = %q, want %q", got, tt.wantModule)
			}
		})
	}

	if got := router.Prefixes(); len(got) != 2 || got[0] != "/api" || got[1] != "/app" {
		t.Errorf("prefixes = %v", got)
	}
}

func TestNewPanicsOnInvalidPrefix(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	module.New("/a/b", echoPath())
}
