package router

import (
	"net/http"

	"github.com/corewire/gonzo-router/compiler"
)

// Context carries one request through its middleware chain to its final
// handler. It is allocated once per request rather than pooled: pooling
// trades an allocation for lifecycle complexity that only pays off when
// dispatch itself is cheap enough for the allocation to matter. Here the
// linear scan over declared routes already dominates the per-request
// cost, so pooling would not be worth the lifecycle bugs it invites.
type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request
	Match   *compiler.MatchResult

	route *routeEntry
	chain []MiddlewareFunc
	index int
	final func(*Context) error

	err error
}

// Next invokes the next middleware in the chain, or the final handler once
// the chain is exhausted. A middleware that returns without calling Next
// short-circuits the remainder of the chain and the final handler —
// exactly the "short-circuit semantics" the middleware chain is specified
// to support.
func (c *Context) Next() {
	if c.index < len(c.chain) {
		mw := c.chain[c.index]
		c.index++
		mw(c)
		return
	}
	if c.final != nil {
		c.err = c.final(c)
		c.final = nil
	}
}

// Param returns a matched path segment by name, mirroring
// compiler.MatchResult.Named for handler code that holds a *Context
// instead of the raw match result.
func (c *Context) Param(name string) (string, bool) {
	return c.Match.Named(name)
}

// RunMiddleware drives a single middleware function to completion against
// w and r, with an empty match result and a no-op final handler. It exists
// so a middleware sub-package's tests can exercise New's returned
// MiddlewareFunc without constructing a full Router and RouteCollection.
func RunMiddleware(mw MiddlewareFunc, w http.ResponseWriter, r *http.Request) *Context {
	return RunChain([]MiddlewareFunc{mw}, nil, w, r)
}

// RunChain drives an ordered list of middleware functions, followed by
// final (a no-op if nil), to completion against w and r. Unlike
// RunMiddleware, it lets a test place a panicking or short-circuiting
// handler at the end of the chain so an earlier middleware (e.g.
// recovery.New) observes it exactly as it would in a real dispatch.
func RunChain(mws []MiddlewareFunc, final func(*Context) error, w http.ResponseWriter, r *http.Request) *Context {
	if final == nil {
		final = func(*Context) error { return nil }
	}
	c := &Context{
		Writer:  w,
		Request: r,
		Match:   &compiler.MatchResult{Matched: false},
		chain:   mws,
		final:   final,
	}
	c.Next()
	return c
}
