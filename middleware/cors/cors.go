// Package cors provides CORS middleware: it sets the
// Access-Control-Allow-* response headers and answers OPTIONS preflight
// requests with a 204.
package cors

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/corewire/gonzo-router"
)

// Option defines functional options for cors middleware configuration.
type Option func(*config)

// config holds the configuration for the cors middleware.
type config struct {
	allowedOrigins   []string
	allowedMethods   []string
	allowedHeaders   []string
	exposedHeaders   []string
	allowCredentials bool
	maxAge           int
	allowAllOrigins  bool
	allowOriginFunc  func(origin string) bool
}

// defaultConfig returns the default configuration for cors middleware.
// Default configuration is restrictive for security.
func defaultConfig() *config {
	return &config{
		allowedOrigins:   []string{},
		allowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		allowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		exposedHeaders:   []string{},
		allowCredentials: false,
		maxAge:           3600,
		allowAllOrigins:  false,
	}
}

// New returns a middleware that handles Cross-Origin Resource Sharing
// (CORS). It automatically handles preflight requests and sets appropriate
// CORS headers.
//
// Basic usage:
//
//	r := router.New()
//	r.UseNamed("cors", cors.New(cors.WithAllowedOrigins("https://example.com")))
func New(opts ...Option) router.MiddlewareFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	allowedMethodsHeader := strings.Join(cfg.allowedMethods, ", ")
	allowedHeadersHeader := strings.Join(cfg.allowedHeaders, ", ")
	exposedHeadersHeader := ""
	if len(cfg.exposedHeaders) > 0 {
		exposedHeadersHeader = strings.Join(cfg.exposedHeaders, ", ")
	}
	maxAgeHeader := strconv.Itoa(cfg.maxAge)

	return func(c *router.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}

		allowedOrigin := ""
		switch {
		case cfg.allowAllOrigins:
			allowedOrigin = "*"
		case cfg.allowOriginFunc != nil:
			if cfg.allowOriginFunc(origin) {
				allowedOrigin = origin
			}
		case slices.Contains(cfg.allowedOrigins, origin):
			allowedOrigin = origin
		}

		if allowedOrigin == "" {
			c.Next()
			return
		}

		if cfg.allowCredentials && allowedOrigin == "*" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if cfg.allowCredentials {
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if exposedHeadersHeader != "" {
			c.Writer.Header().Set("Access-Control-Expose-Headers", exposedHeadersHeader)
		}

		if c.Request.Method == http.MethodOptions {
			c.Writer.Header().Set("Access-Control-Allow-Methods", allowedMethodsHeader)
			c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeadersHeader)
			c.Writer.Header().Set("Access-Control-Max-Age", maxAgeHeader)
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
