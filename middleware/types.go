// Package middleware holds context keys shared by the middleware
// sub-packages, so requestid can set a value that a caller's own logging
// middleware reads without the two packages depending on each other.
package middleware

// ContextKey is a type for context keys to avoid collisions with
// string-based keys from other packages.
type ContextKey string

// RequestIDKey is the context key requestid stores the generated or
// forwarded request ID under.
const RequestIDKey ContextKey = "middleware.request_id"
