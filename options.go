package router

import (
	"net/http"
	"time"
)

// Option configures a Router at construction time using the standard
// functional-options pattern.
type Option func(*Router)

// WithContainer installs a ControllerContainer used to resolve
// string/pair handler controller identifiers. The default is an empty
// DefaultContainer — callers relying on string/pair handlers must either
// register constructors on it (via a type assertion) or supply their own
// container.
func WithContainer(c ControllerContainer) Option {
	return func(r *Router) { r.container = c }
}

// WithResolver registers an additional or overriding parameter resolver
// for typeName.
func WithResolver(typeName string, fn Resolver) Option {
	return func(r *Router) { r.resolvers.Register(typeName, fn) }
}

// WithDiagnostics installs a DiagnosticHandler.
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(r *Router) { r.diagnostics = h }
}

// WithNotFoundHandler overrides the default 404 response.
func WithNotFoundHandler(h http.HandlerFunc) Option {
	return func(r *Router) { r.notFound = h }
}

// WithMethodNotAllowedHandler overrides the default 405 response. The
// handler receives the request as usual; the Allow header has already
// been set by the time it runs.
func WithMethodNotAllowedHandler(h http.HandlerFunc) Option {
	return func(r *Router) { r.methodNotAllowed = h }
}

// WithMiddleware registers a named middleware at construction time,
// equivalent to calling Router.UseNamed after New.
func WithMiddleware(name string, mw MiddlewareFunc) Option {
	return func(r *Router) { r.middleware.Register(name, mw) }
}

// WithMiddlewareGroup registers a named middleware group at construction
// time, equivalent to calling Router.UseGroup after New.
func WithMiddlewareGroup(name string, ids ...string) Option {
	return func(r *Router) { r.middleware.RegisterGroup(name, ids...) }
}

// WithH2C enables HTTP/2 cleartext support on Serve. Only use in
// development or behind a trusted load balancer that terminates TLS —
// never on a public-facing listener.
func WithH2C(enable bool) Option {
	return func(r *Router) { r.enableH2C = enable }
}

// WithServerTimeouts overrides the http.Server timeouts Serve/ServeTLS
// apply. The defaults (5s/15s/30s/60s) guard against slowloris-style
// resource exhaustion; override them only with a deliberate reason.
func WithServerTimeouts(readHeader, read, write, idle time.Duration) Option {
	return func(r *Router) {
		r.serverTimeouts = &serverTimeouts{readHeader: readHeader, read: read, write: write, idle: idle}
	}
}
