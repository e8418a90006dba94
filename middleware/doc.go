// Package middleware is the parent of this module's optional middleware
// sub-packages (cors, recovery, requestid). Each sub-package's New returns
// a router.MiddlewareFunc registered with Router.UseNamed — none of them
// are wired in automatically.
package middleware
