// Package recovery provides middleware for recovering from panics in HTTP
// handlers, preventing server crashes and returning proper error
// responses.
package recovery

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/corewire/gonzo-router"
)

// Option defines functional options for recovery middleware configuration.
type Option func(*config)

// config holds the configuration for the recovery middleware.
type config struct {
	stackTrace      bool
	stackSize       int
	logger          func(c *router.Context, err any, stack []byte)
	handler         func(c *router.Context, err any)
	disableStackAll bool
}

func defaultConfig() *config {
	return &config{
		stackTrace:      true,
		stackSize:       4 << 10,
		disableStackAll: true,
		logger:          defaultLogger,
		handler:         defaultHandler,
	}
}

func defaultLogger(_ *router.Context, err any, stack []byte) {
	slog.Error("panic recovered", "error", err, "stack", string(stack))
}

func defaultHandler(c *router.Context, _ any) {
	_ = router.JSON{
		Status: http.StatusInternalServerError,
		Body:   map[string]any{"error": "internal server error", "code": "INTERNAL_ERROR"},
	}.WriteResponse(c.Writer)
}

// New returns a middleware that recovers from panics in request handlers.
// It logs the panic, optionally captures a stack trace, and returns a 500
// error response. Register it first (or early) in a route's middleware
// list so it catches panics from everything after it.
//
// Basic usage:
//
//	r.UseNamed("recover", recovery.New())
func New(opts ...Option) router.MiddlewareFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}

			var stack []byte
			if cfg.stackTrace {
				full := debug.Stack()
				if cfg.disableStackAll && len(full) > cfg.stackSize {
					stack = full[:cfg.stackSize]
				} else {
					stack = full
				}
			}

			if cfg.logger != nil {
				cfg.logger(c, err, stack)
			}
			if cfg.handler != nil {
				cfg.handler(c, err)
			}
		}()

		c.Next()
	}
}
