// Package route defines a single declared endpoint: its HTTP methods, URI
// template, per-segment constraints, middleware list, namespace, and
// handler descriptor.
//
// A Route knows nothing about how it got declared (no group stack, no
// router reference) and nothing about how it gets invoked (no resolver
// registry, no middleware execution) — that composition and dispatch logic
// lives in the root router package, which holds a slice of *Route. Keeping
// Route a plain data holder with fluent setters avoids the import-cycle
// problem entirely, rather than working around it with a registrar
// interface.
package route
