package router

// DiagnosticKind categorizes a DiagnosticEvent.
type DiagnosticKind string

const (
	// DiagHighParamCount fires when a route declares more segments than
	// paramCountWarningThreshold.
	DiagHighParamCount DiagnosticKind = "route_param_count_high"
	// DiagDuplicateRouteName fires when Route.Name collides with an
	// already-registered name.
	DiagDuplicateRouteName DiagnosticKind = "route_duplicate_name"
	// DiagPanicRecovered names a recovered-panic event. Neither the router
	// nor middleware/recovery emits it; recovery reports panics through its
	// own logger.
	DiagPanicRecovered DiagnosticKind = "panic_recovered"
	// DiagPreflightServed fires when an OPTIONS request was answered
	// automatically rather than by a declared route handler.
	DiagPreflightServed DiagnosticKind = "preflight_served"
	// DiagH2CEnabled fires once, when Serve wraps the handler in an h2c
	// passthrough because WithH2C(true) was supplied.
	DiagH2CEnabled DiagnosticKind = "h2c_enabled"
)

// paramCountWarningThreshold is the segment count above which Router.add
// emits a DiagHighParamCount diagnostic — a route with this many
// positional segments is usually a sign the route should be restructured,
// not a hard limit.
const paramCountWarningThreshold = 8

// DiagnosticEvent is a single structured diagnostic emitted by the router
// at declaration or dispatch time.
type DiagnosticEvent struct {
	Kind DiagnosticKind
	Msg  string
	Data map[string]any
}

// DiagnosticHandler receives DiagnosticEvents. It is never required:
// Router works with no handler installed, in which case events are
// dropped. Install one with WithDiagnostics to route events into
// log/slog or any other sink.
type DiagnosticHandler func(DiagnosticEvent)

// emit delivers an event to the router's diagnostic handler, if any.
func (r *Router) emit(kind DiagnosticKind, msg string, data map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics(DiagnosticEvent{Kind: kind, Msg: msg, Data: data})
}
