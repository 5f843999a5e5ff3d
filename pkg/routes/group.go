// Package routes declares HTTP route groups once and uses the declaration both
// to register handlers and to describe them in an OpenAPI document.
package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/opiniao/pkg/openapi"
)

// Group organizes routes under a common prefix. Tags apply to every documented
// route in the group and its children.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	walk(groups, "", nil, func(path string, _ []string, r Route) {
		mux.HandleFunc(r.Method+" "+path, r.Handler)
	})
}

// Describe adds every route carrying OpenAPI metadata to spec.Paths, prefixing
// paths with basePath. Group tags are declared on the spec with the group
// description.
func Describe(spec *openapi.Spec, basePath string, groups ...Group) {
	declareTags(spec, groups)

	walk(groups, "", nil, func(path string, tags []string, r Route) {
		if r.OpenAPI == nil {
			return
		}

		full := strings.TrimSuffix(basePath, "/") + path
		if full == "" {
			full = "/"
		}

		item, ok := spec.Paths[full]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[full] = item
		}

		op := *r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		item.Set(r.Method, &op)
	})
}

func declareTags(spec *openapi.Spec, groups []Group) {
	for _, g := range groups {
		for _, tag := range g.Tags {
			spec.AddTag(tag, g.Description)
		}
		declareTags(spec, g.Children)
	}
}

func walk(groups []Group, parent string, parentTags []string, fn func(path string, tags []string, r Route)) {
	for _, g := range groups {
		prefix := parent + g.Prefix
		tags := parentTags
		if len(g.Tags) > 0 {
			tags = g.Tags
		}
		for _, r := range g.Routes {
			fn(prefix+r.Pattern, tags, r)
		}
		walk(g.Children, prefix, tags, fn)
	}
}
