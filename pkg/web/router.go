package web

import "net/http"

// Router wraps http.ServeMux with a handler for unmatched routes, used to
// render a not-found page instead of the mux's plain-text 404.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates a Router with default ServeMux behavior.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// SetFallback configures the handler for unmatched routes.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// Mux exposes the underlying ServeMux for route registration.
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

// ServeHTTP dispatches to the mux, or to the fallback when no pattern matches.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.fallback.ServeHTTP(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
