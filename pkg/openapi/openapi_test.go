package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/opiniao/pkg/openapi"
)

func TestSpecJSON(t *testing.T) {
	spec := openapi.NewSpec("Opinião API", "1.2.3")
	spec.SetDescription("sentiment")
	spec.AddServer("/api")
	spec.Components.AddSchemas(map[string]*openapi.Schema{"Thing": {Type: "object"}})
	spec.Paths["/things"] = &openapi.PathItem{}
	spec.Paths["/things"].Set("GET", &openapi.Operation{
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("ok", "Thing"),
			404: openapi.ResponseRef("NotFound"),
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
		Components struct {
			Schemas   map[string]json.RawMessage `json:"schemas"`
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"components"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if doc.OpenAPI != "3.1.0" || doc.Info.Title != "Opinião API" {
		t.Errorf("header = %s %s", doc.OpenAPI, doc.Info.Title)
	}
	if _, ok := doc.Paths["/things"]["get"].Responses["404"]; !ok {
		t.Error("missing 404 response")
	}
	for _, name := range []string{"Error", "Thing"} {
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Errorf("missing schema %s", name)
		}
	}
	for _, name := range []string{"BadRequest", "NotFound", "PayloadTooLarge", "InternalError", "ServiceUnavailable"} {
		if _, ok := doc.Components.Responses[name]; !ok {
			t.Errorf("missing response %s", name)
		}
	}
}

func TestServeSpec(t *testing.T) {
	rec := httptest.NewRecorder()
	openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.String() != `{"openapi":"3.1.0"}` {
		t.Errorf("body = %q", rec.Body.String())
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 body = %q", rec.Body.String())
	}
}

func TestSpecTagsAndServers(t *testing.T) {
	spec := openapi.NewSpec("Opinião API", "1.0.0")
	spec.AddServer("/api")
	spec.AddServer("/api")
	spec.AddTag("History", "")
	spec.AddTag("History", "Browse recorded analyses")
	spec.AddTag("Analysis", "Classify")

	if len(spec.Servers) != 1 {
		t.Errorf("servers = %d, want 1", len(spec.Servers))
	}
	if len(spec.Tags) != 2 {
		t.Fatalf("tags = %d, want 2", len(spec.Tags))
	}
	if spec.Tags[0].Description != "Browse recorded analyses" {
		t.Errorf("tag description = %q", spec.Tags[0].Description)
	}
}

func TestConfigServersFromEnv(t *testing.T) {
	t.Setenv("TEST_OPENAPI_SERVERS", "https://a.example/api, ,https://b.example/api")

	var cfg openapi.Config
	if err := cfg.Finalize(&openapi.ConfigEnv{Servers: "TEST_OPENAPI_SERVERS"}); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Servers) != 2 || cfg.Servers[1] != "https://b.example/api" {
		t.Errorf("servers = %v", cfg.Servers)
	}
	if cfg.Title == "" {
		t.Error("title default not applied")
	}
}
