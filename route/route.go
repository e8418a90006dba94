package route

import (
	"fmt"

	"github.com/corewire/gonzo-router/compiler"
)

// Route is a single declared endpoint. It is plain data plus fluent
// setters; the root router package owns composing it from the active
// group scope and invoking it against a request.
type Route struct {
	Methods map[string]bool
	URI     string

	Matcher     *compiler.CompiledMatcher
	Constraints map[string]compiler.Constraint

	Namespace  string
	Middleware []string
	Handler    Handler
	RouteName  string
}

// New builds a Route for the given methods and URI template, compiling its
// matcher immediately so a malformed template is caught at declaration
// time rather than on the first matching request.
func New(methods []string, uri string, handler Handler) (*Route, error) {
	set := make(map[string]bool, len(methods))
	for _, m := range methods {
		set[m] = true
	}

	rt := &Route{
		Methods:     set,
		URI:         uri,
		Constraints: make(map[string]compiler.Constraint),
		Handler:     handler,
	}

	matcher, err := compiler.Compile(uri, rt.Constraints)
	if err != nil {
		return nil, err
	}
	rt.Matcher = matcher
	return rt, nil
}

// recompile rebuilds the matcher from the current constraint map. Called
// whenever Where mutates Constraints after construction.
func (rt *Route) recompile() error {
	matcher, err := compiler.Compile(rt.URI, rt.Constraints)
	if err != nil {
		return err
	}
	rt.Matcher = matcher
	return nil
}

// Where attaches a constraint to a named segment and recompiles the
// matcher. required, if given, overrides the template's own `{?name}` /
// `{name}` marker (see compiler.Constraint.Required); omitting it leaves
// the template marker in control.
func (rt *Route) Where(name, pattern string, required ...bool) *Route {
	c := compiler.Constraint{Pattern: pattern}
	if len(required) > 0 {
		c.Required = compiler.Bool(required[0])
	}
	rt.Constraints[name] = c

	if err := rt.recompile(); err != nil {
		panic(fmt.Sprintf("route: invalid constraint for %q on %q: %v", name, rt.URI, err))
	}
	return rt
}

// SetNamespace sets the controller namespace prefixed onto a string/pair
// handler's controller identifier at resolution time.
func (rt *Route) SetNamespace(namespace string) *Route {
	rt.Namespace = namespace
	return rt
}

// SetMiddleware replaces the route's middleware list.
func (rt *Route) SetMiddleware(ids ...string) *Route {
	rt.Middleware = ids
	return rt
}

// AppendMiddleware appends to the route's middleware list, used when a
// group's middleware is folded onto a route declared within it.
func (rt *Route) AppendMiddleware(ids ...string) *Route {
	rt.Middleware = append(rt.Middleware, ids...)
	return rt
}

// SetConstraints merges additional constraints (e.g. folded down from an
// enclosing group's Where scope) without discarding ones already set
// directly on the route, and recompiles the matcher.
func (rt *Route) SetConstraints(extra map[string]compiler.Constraint) *Route {
	for name, c := range extra {
		if _, exists := rt.Constraints[name]; !exists {
			rt.Constraints[name] = c
		}
	}
	if err := rt.recompile(); err != nil {
		panic(fmt.Sprintf("route: invalid folded constraint on %q: %v", rt.URI, err))
	}
	return rt
}

// Name assigns a route name used for lookup/introspection, never for
// reverse URL generation (an explicit non-goal).
func (rt *Route) Name(name string) *Route {
	rt.RouteName = name
	return rt
}

// AllowsMethod reports whether the route declares m, with HEAD implicitly
// allowed whenever GET is.
func (rt *Route) AllowsMethod(m string) bool {
	if rt.Methods[m] {
		return true
	}
	return m == "HEAD" && rt.Methods["GET"]
}

// AllowedMethods returns the route's declared methods, with HEAD included
// whenever GET is, in a stable order. OPTIONS appears only if the route
// declared it explicitly — an automatic pre-flight answer is built by the
// caller from the declared methods of every route matching a path, not
// from this list alone.
func (rt *Route) AllowedMethods() []string {
	order := []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	out := []string{}
	for _, m := range order {
		switch {
		case m == "HEAD" && rt.Methods["GET"]:
			out = append(out, m)
		case rt.Methods[m]:
			out = append(out, m)
		}
	}
	return out
}

// Info is a read-only introspection snapshot of a Route, used for
// diagnostics and documentation generation — never consulted on the
// request path.
type Info struct {
	Methods     []string
	URI         string
	Namespace   string
	Middleware  []string
	Constraints map[string]string
	Name        string
	ParamCount  int
}

// Describe builds an Info snapshot of the route.
func (rt *Route) Describe() Info {
	constraints := make(map[string]string, len(rt.Constraints))
	for name, c := range rt.Constraints {
		constraints[name] = c.Pattern
	}
	return Info{
		Methods:     rt.AllowedMethods(),
		URI:         rt.URI,
		Namespace:   rt.Namespace,
		Middleware:  append([]string(nil), rt.Middleware...),
		Constraints: constraints,
		Name:        rt.RouteName,
		ParamCount:  len(rt.Matcher.Segments()),
	}
}
