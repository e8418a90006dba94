package route

// Kind distinguishes the three ways a route's target handler can be
// declared.
type Kind uint8

const (
	// KindString is a bare "Controller@method" string.
	KindString Kind = iota
	// KindPair is a [controller, method] pair supplied as two values.
	KindPair
	// KindFunc is an inline Go function.
	KindFunc
)

// Handler is a tagged union over the three handler forms a route can be
// declared with. Exactly one of the payload fields is meaningful, selected
// by Kind — this stands in for the dynamic "string | array | callable"
// union the original accepts, without resorting to `any` at declaration
// time.
type Handler struct {
	Kind Kind

	// String holds "Controller@method" when Kind == KindString.
	String string

	// Controller and Method hold the two halves of a [controller, method]
	// pair when Kind == KindPair.
	Controller string
	Method     string

	// Func holds the inline handler function when Kind == KindFunc.
	Func any
}

// HandlerString builds a Handler from a "Controller@method" string. The
// string is split lazily at resolution time, not here, so a malformed
// string surfaces as a dispatch-time error rather than a panic during
// declaration.
func HandlerString(spec string) Handler {
	return Handler{Kind: KindString, String: spec}
}

// HandlerPair builds a Handler from an explicit controller identifier and
// method name.
func HandlerPair(controller, method string) Handler {
	return Handler{Kind: KindPair, Controller: controller, Method: method}
}

// HandlerFunc builds a Handler from an inline Go function. fn's signature
// is inspected via reflection at dispatch time; see the root package's
// parameter resolution for the supported shapes.
func HandlerFunc(fn any) Handler {
	return Handler{Kind: KindFunc, Func: fn}
}
