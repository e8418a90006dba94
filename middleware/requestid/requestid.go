package requestid

import (
	"context"

	"github.com/corewire/gonzo-router"
	"github.com/corewire/gonzo-router/middleware"
	"github.com/google/uuid"
)

// Option defines functional options for requestid middleware configuration.
type Option func(*config)

// config holds the configuration for the requestid middleware.
type config struct {
	headerName    string
	generator     func() string
	allowClientID bool
}

func defaultConfig() *config {
	return &config{
		headerName:    "X-Request-ID",
		generator:     generateUUID,
		allowClientID: true,
	}
}

// generateUUID returns a random (v4) UUID string. This is the idiom the
// rest of the example pack uses for request/correlation IDs, in place of
// a hand-rolled crypto/rand-plus-fallback generator.
func generateUUID() string {
	return uuid.New().String()
}

// New returns a middleware that attaches a unique request ID to each
// request: it reuses a client-supplied ID (if allowed) or generates one,
// then sets it on the response header and stashes it on the request's
// context for downstream middleware and handlers.
//
// Basic usage:
//
//	r.UseNamed("request-id", requestid.New())
//
// Custom header name:
//
//	r.UseNamed("request-id", requestid.New(requestid.WithHeader("X-Correlation-ID")))
func New(opts ...Option) router.MiddlewareFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		var id string
		if cfg.allowClientID {
			id = c.Request.Header.Get(cfg.headerName)
		}
		if id == "" {
			id = cfg.generator()
		}

		c.Writer.Header().Set(cfg.headerName, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), middleware.RequestIDKey, id))

		c.Next()
	}
}

// Get retrieves the request ID stashed on the request's context by New,
// or "" if none was set.
func Get(c *router.Context) string {
	id, _ := c.Request.Context().Value(middleware.RequestIDKey).(string)
	return id
}
