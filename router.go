package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/corewire/gonzo-router/compiler"
	"github.com/corewire/gonzo-router/route"
)

// Router is the public façade: declare routes with GET/POST/PUT/PATCH/
// DELETE/OPTIONS and Group, then serve requests by passing the Router to
// http.Server as its Handler.
//
// Declaration (the GET-family, Group, Where) and serving (ServeHTTP) must
// not run concurrently — routes are meant to be declared once at startup.
// frozen catches the most common misuse of that rule: once ServeHTTP has
// run for the first time, any further GET-family declaration (directly or
// inside a Group body) panics instead of racing the route collection.
// Where and the other Route setters are not checked against frozen.
type Router struct {
	routes     *RouteCollection
	groups     GroupStack
	middleware *MiddlewareChain
	resolvers  *ResolverRegistry
	container  ControllerContainer

	diagnostics      DiagnosticHandler
	notFound         http.HandlerFunc
	methodNotAllowed http.HandlerFunc

	enableH2C      bool
	serverTimeouts *serverTimeouts
	server         *http.Server
	serverMu       sync.Mutex

	frozen atomic.Bool
}

// New builds a Router ready for route declaration.
func New(opts ...Option) *Router {
	r := &Router{
		routes:           NewRouteCollection(),
		middleware:       NewMiddlewareChain(),
		resolvers:        NewResolverRegistry(),
		container:        NewDefaultContainer(),
		notFound:         defaultNotFoundHandler,
		methodNotAllowed: defaultMethodNotAllowedHandler,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, "not found")
}

func defaultMethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// respondError writes a minimal error body, choosing JSON over plain text
// for an AJAX-flavored request exactly as isAjaxRequest decides for
// handler errors.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if isAjaxRequest(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"error":%q}`, message)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, message)
}

// isAjaxRequest reports whether r looks like an API/AJAX call rather than
// a browser navigation: either the conventional X-Requested-With header,
// or an Accept header naming application/json.
func isAjaxRequest(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// servePreflight answers an automatic OPTIONS pre-flight: 200 with both
// Allow and Access-Control-Allow-Methods set to the comma-joined allowed
// list, and that same list as the body — a JSON array for an AJAX-flavored
// request, the plain joined string otherwise.
func servePreflight(w http.ResponseWriter, r *http.Request, allowed []string) {
	joined := strings.Join(allowed, ", ")
	w.Header().Set("Allow", joined)
	w.Header().Set("Access-Control-Allow-Methods", joined)

	if isAjaxRequest(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(allowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, joined)
}

// toHandler turns the loosely-typed handler argument accepted by the
// GET-family methods into a route.Handler tagged union.
func toHandler(h any) route.Handler {
	switch v := h.(type) {
	case string:
		return route.HandlerString(v)
	case [2]string:
		return route.HandlerPair(v[0], v[1])
	case route.Handler:
		return v
	default:
		return route.HandlerFunc(h)
	}
}

// add declares a route for methods at uri under the router's currently
// active group scope, panicking on any declaration-time error since this
// convenience layer has no error return.
func (r *Router) add(methods []string, uri string, handler any) *route.Route {
	if r.frozen.Load() {
		panic(ErrRoutesFrozen)
	}

	fullURI := r.groups.foldPrefix(uri)
	rt, err := route.New(methods, fullURI, toHandler(handler))
	if err != nil {
		panic(err)
	}

	rt.SetNamespace(r.groups.foldNamespace())
	rt.AppendMiddleware(r.groups.foldMiddleware()...)
	rt.SetConstraints(r.groups.foldConstraints())

	for _, id := range rt.Middleware {
		if !r.middleware.Resolve(id) {
			panic(fmt.Sprintf("router: unknown middleware id %q on route %q", id, fullURI))
		}
	}

	if len(rt.Matcher.Segments()) > paramCountWarningThreshold {
		r.emit(DiagHighParamCount, "route declares an unusually high number of segments", map[string]any{
			"uri":   fullURI,
			"count": len(rt.Matcher.Segments()),
		})
	}

	if err := r.routes.Add(rt); err != nil {
		var dup *duplicateRouteNameError
		if errors.As(err, &dup) {
			r.emit(DiagDuplicateRouteName, err.Error(), map[string]any{"name": rt.RouteName})
		}
		panic(err)
	}
	return rt
}

// GET declares a GET route.
func (r *Router) GET(uri string, handler any) *route.Route { return r.add([]string{"GET"}, uri, handler) }

// POST declares a POST route.
func (r *Router) POST(uri string, handler any) *route.Route {
	return r.add([]string{"POST"}, uri, handler)
}

// PUT declares a PUT route.
func (r *Router) PUT(uri string, handler any) *route.Route { return r.add([]string{"PUT"}, uri, handler) }

// PATCH declares a PATCH route.
func (r *Router) PATCH(uri string, handler any) *route.Route {
	return r.add([]string{"PATCH"}, uri, handler)
}

// DELETE declares a DELETE route.
func (r *Router) DELETE(uri string, handler any) *route.Route {
	return r.add([]string{"DELETE"}, uri, handler)
}

// OPTIONS declares an explicit OPTIONS route. Without one, Router answers
// OPTIONS pre-flight requests automatically (see ServeHTTP).
func (r *Router) OPTIONS(uri string, handler any) *route.Route {
	return r.add([]string{"OPTIONS"}, uri, handler)
}

// Match declares a route answering every method in methods.
func (r *Router) Match(methods []string, uri string, handler any) *route.Route {
	return r.add(methods, uri, handler)
}

// Group pushes scope onto the active group stack, runs body with it
// active, then pops it — every route declared inside body (directly, or
// via a further nested Group) has scope's prefix, namespace, constraints,
// and middleware folded onto it.
func (r *Router) Group(scope GroupScope, body func(*Router)) {
	r.groups.Push(scope)
	defer r.groups.Pop()
	body(r)
}

// UseNamed registers a named middleware, referenceable from a route or
// group's Middleware list by id.
func (r *Router) UseNamed(name string, mw MiddlewareFunc) {
	r.middleware.Register(name, mw)
}

// UseGroup registers a named middleware group: an alias for an ordered
// list of other ids.
func (r *Router) UseGroup(name string, ids ...string) {
	r.middleware.RegisterGroup(name, ids...)
}

// Named looks up a previously declared route by the name given to
// Route.Name.
func (r *Router) Named(name string) (*route.Route, bool) {
	if rt, ok := r.routes.Named(name); ok {
		return rt, true
	}
	for _, rt := range r.routes.All() {
		if rt.RouteName == name {
			return rt, true
		}
	}
	return nil, false
}

// ServeHTTP implements http.Handler: match, dispatch, respond. It never
// returns an error to its caller — failures become HTTP responses.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.frozen.Store(true)

	rt, match, err := r.routes.Resolve(req.Method, req.URL.Path)
	if err != nil {
		var notAllowed *MethodNotAllowedError
		if errors.As(err, &notAllowed) {
			if req.Method == http.MethodOptions {
				r.emit(DiagPreflightServed, "answered OPTIONS pre-flight automatically", map[string]any{"path": req.URL.Path})
				servePreflight(w, req, notAllowed.Allowed)
				return
			}
			w.Header().Set("Allow", strings.Join(notAllowed.Allowed, ", "))
			r.methodNotAllowed(w, req)
			return
		}
		r.notFound(w, req)
		return
	}

	r.dispatch(w, req, rt, match)
}

// dispatch builds the request's middleware chain, runs it, and coerces
// the final handler's return value into a response.
func (r *Router) dispatch(w http.ResponseWriter, req *http.Request, rt *route.Route, match *compiler.MatchResult) {
	ctx := &Context{
		Writer:  w,
		Request: req,
		Match:   match,
		route:   &routeEntry{route: rt, match: match},
	}
	ctx.chain = r.middleware.Expand(rt.Middleware)
	ctx.final = func(c *Context) error {
		result, err := r.invoke(rt, c)
		if err != nil {
			return err
		}
		return writeResponse(c.Writer, result)
	}

	ctx.Next()

	if ctx.err != nil {
		respondError(w, req, http.StatusInternalServerError, "internal server error")
	}
}

// invoke resolves rt's handler target and calls it with its arguments
// resolved from ctx, returning the handler's single return value (or nil)
// and any error the handler or its resolution produced.
func (r *Router) invoke(rt *route.Route, ctx *Context) (any, error) {
	switch rt.Handler.Kind {
	case route.KindFunc:
		fn := reflect.ValueOf(rt.Handler.Func)
		args, err := r.resolveArgs(fn.Type(), rt, ctx)
		if err != nil {
			return nil, err
		}
		return callHandler(fn, args)

	case route.KindString, route.KindPair:
		controllerID, methodName, err := controllerTarget(rt.Handler)
		if err != nil {
			return nil, err
		}
		instance, err := r.container.New(qualify(rt.Namespace, controllerID))
		if err != nil {
			return nil, err
		}
		bound, ok := methodOf(instance, methodName)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, methodName)
		}
		args, err := r.resolveArgs(bound.Type(), rt, ctx)
		if err != nil {
			return nil, err
		}
		return callHandler(bound, args)

	default:
		return nil, ErrUnknownController
	}
}

// controllerTarget splits a string/pair Handler into a controller
// identifier and method name.
func controllerTarget(h route.Handler) (controller, method string, err error) {
	if h.Kind == route.KindPair {
		return h.Controller, h.Method, nil
	}
	parts := strings.SplitN(h.String, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: malformed controller handler %q (want \"Controller@method\")", ErrUnknownController, h.String)
	}
	return parts[0], parts[1], nil
}

// qualify prefixes a controller identifier with the folded-group
// namespace, if any.
func qualify(namespace, controller string) string {
	if namespace == "" {
		return controller
	}
	return namespace + "." + controller
}

var (
	requestPtrType      = reflect.TypeOf(&http.Request{})
	responseWriterType  = reflect.TypeOf((*http.ResponseWriter)(nil)).Elem()
	contextPtrType      = reflect.TypeOf(&Context{})
	errorType           = reflect.TypeOf((*error)(nil)).Elem()
)

// resolveArgs builds the argument list for fnType by matching each
// parameter against the route's request-scoped collaborator types first
// (*http.Request, http.ResponseWriter, *Context), then consuming the
// route's matched segments in declaration order, resolving each through
// the ResolverRegistry by the parameter's Go type.
func (r *Router) resolveArgs(fnType reflect.Type, rt *route.Route, ctx *Context) ([]reflect.Value, error) {
	segments := rt.Matcher.Segments()
	args := make([]reflect.Value, fnType.NumIn())
	segIdx := 0

	for i := 0; i < fnType.NumIn(); i++ {
		pt := fnType.In(i)

		switch {
		case pt == requestPtrType:
			args[i] = reflect.ValueOf(ctx.Request)
			continue
		case pt == responseWriterType:
			args[i] = reflect.ValueOf(ctx.Writer)
			continue
		case pt == contextPtrType:
			args[i] = reflect.ValueOf(ctx)
			continue
		}

		if segIdx >= len(segments) {
			return nil, fmt.Errorf("%w: handler declares more parameters than the route has segments", ErrUnresolvedParameterType)
		}
		name := segments[segIdx]
		index := segIdx
		segIdx++

		var rawPtr *string
		if v, ok := ctx.Match.Named(name); ok {
			rawPtr = &v
		}

		resolver, ok := r.resolvers.Lookup(pt.String())
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedParameterType, pt.String())
		}
		val, err := resolver(rawPtr, ctx.Match, name, index)
		if err != nil {
			return nil, err
		}

		rv := reflect.ValueOf(val)
		switch {
		case rv.Type().AssignableTo(pt):
			args[i] = rv
		case rv.Type().ConvertibleTo(pt):
			args[i] = rv.Convert(pt)
		default:
			return nil, fmt.Errorf("%w: resolved %s is not assignable to parameter %d (%s)", ErrUnresolvedParameterType, rv.Type(), i, pt)
		}
	}
	return args, nil
}

// callHandler invokes fn with args and interprets its return values: a
// trailing error return is split off and reported separately; the
// remaining single return value (if any) is the response. A handler
// returning nothing yields (nil, nil) — the "absent/void" response case.
func callHandler(fn reflect.Value, args []reflect.Value) (any, error) {
	out := fn.Call(args)
	if len(out) == 0 {
		return nil, nil
	}

	last := out[len(out)-1]
	var err error
	if last.Type().Implements(errorType) {
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, err
	}
}
