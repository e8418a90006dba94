package recovery

import "github.com/corewire/gonzo-router"

// WithStackTrace enables or disables stack trace capture. Default: true.
func WithStackTrace(enabled bool) Option {
	return func(cfg *config) { cfg.stackTrace = enabled }
}

// WithStackSize sets the maximum captured stack trace size in bytes.
// Default: 4KB.
func WithStackSize(size int) Option {
	return func(cfg *config) { cfg.stackSize = size }
}

// WithLogger sets a custom logger invoked with the context, the recovered
// value, and the captured stack trace.
func WithLogger(logger func(c *router.Context, err any, stack []byte)) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithHandler sets a custom recovery handler responsible for writing the
// response after a panic is recovered.
func WithHandler(handler func(c *router.Context, err any)) Option {
	return func(cfg *config) { cfg.handler = handler }
}

// WithDisableStackAll caps the captured stack at stackSize when true
// (the default); when false, the full debug.Stack() output is kept.
func WithDisableStackAll(disabled bool) Option {
	return func(cfg *config) { cfg.disableStackAll = disabled }
}
