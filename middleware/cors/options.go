package cors

// WithAllowedOrigins sets the exact list of origins allowed to make
// cross-origin requests.
func WithAllowedOrigins(origins ...string) Option {
	return func(cfg *config) { cfg.allowedOrigins = origins }
}

// WithAllowAllOrigins allows every origin, setting
// Access-Control-Allow-Origin: * when credentials are not requested.
func WithAllowAllOrigins(allow bool) Option {
	return func(cfg *config) { cfg.allowAllOrigins = allow }
}

// WithAllowOriginFunc installs a custom predicate deciding whether an
// origin is allowed, overriding the static allow-list.
func WithAllowOriginFunc(fn func(origin string) bool) Option {
	return func(cfg *config) { cfg.allowOriginFunc = fn }
}

// WithAllowCredentials sets Access-Control-Allow-Credentials.
func WithAllowCredentials(allow bool) Option {
	return func(cfg *config) { cfg.allowCredentials = allow }
}

// WithAllowedMethods overrides the Access-Control-Allow-Methods list sent
// on a preflight response.
func WithAllowedMethods(methods ...string) Option {
	return func(cfg *config) { cfg.allowedMethods = methods }
}

// WithAllowedHeaders overrides the Access-Control-Allow-Headers list sent
// on a preflight response.
func WithAllowedHeaders(headers ...string) Option {
	return func(cfg *config) { cfg.allowedHeaders = headers }
}

// WithExposedHeaders sets Access-Control-Expose-Headers.
func WithExposedHeaders(headers ...string) Option {
	return func(cfg *config) { cfg.exposedHeaders = headers }
}

// WithMaxAge sets Access-Control-Max-Age, in seconds.
func WithMaxAge(seconds int) Option {
	return func(cfg *config) { cfg.maxAge = seconds }
}
