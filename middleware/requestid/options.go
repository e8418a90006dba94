package requestid

// WithHeader sets the header name carrying the request ID.
// Default: "X-Request-ID".
func WithHeader(headerName string) Option {
	return func(cfg *config) { cfg.headerName = headerName }
}

// WithGenerator sets a custom function producing a new request ID.
// Default: a random UUID.
func WithGenerator(generator func() string) Option {
	return func(cfg *config) { cfg.generator = generator }
}

// WithAllowClientID controls whether a client-supplied request ID header
// is reused. When false, a request ID is always generated server-side.
// Default: true.
func WithAllowClientID(allow bool) Option {
	return func(cfg *config) { cfg.allowClientID = allow }
}
