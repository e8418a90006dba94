package router

import (
	"github.com/corewire/gonzo-router/compiler"
	"github.com/corewire/gonzo-router/route"
)

// routeEntry pairs a declared Route with the MatchResult it produced for
// the current request, once resolved — kept on the Context so handler
// resolution code downstream of dispatch does not need a second lookup.
type routeEntry struct {
	route *route.Route
	match *compiler.MatchResult
}

// RouteCollection holds every declared Route in declaration order and
// resolves an incoming request's method and path against them.
//
// There is deliberately no trie or radix index: the collection is built
// once, then read many times, and a plain slice scan keeps the compiled
// matcher (a single regexp.Regexp per route) as the only moving part,
// exactly as the non-goal "no radix/trie optimization" specifies.
type RouteCollection struct {
	routes []*route.Route
	named  map[string]*route.Route
}

// NewRouteCollection builds an empty collection.
func NewRouteCollection() *RouteCollection {
	return &RouteCollection{named: make(map[string]*route.Route)}
}

// Add appends rt to the collection, recording it under its name if one
// was set. A duplicate name is a declaration-time error.
func (rc *RouteCollection) Add(rt *route.Route) error {
	if rt.RouteName != "" {
		if _, exists := rc.named[rt.RouteName]; exists {
			return &duplicateRouteNameError{name: rt.RouteName}
		}
		rc.named[rt.RouteName] = rt
	}
	rc.routes = append(rc.routes, rt)
	return nil
}

// Named looks up a route by the name given to Route.Name.
func (rc *RouteCollection) Named(name string) (*route.Route, bool) {
	rt, ok := rc.named[name]
	return rt, ok
}

// All returns every declared route, in declaration order.
func (rc *RouteCollection) All() []*route.Route {
	return rc.routes
}

// pathMatches scans the collection for every route whose URI template
// matches path, regardless of method, returning each route paired with
// its MatchResult.
func (rc *RouteCollection) pathMatches(path string) []routeEntry {
	var out []routeEntry
	for _, rt := range rc.routes {
		if m := rt.Matcher.Match(path); m.Matched {
			out = append(out, routeEntry{route: rt, match: m})
		}
	}
	return out
}

// Resolve finds the route that should handle method+path.
//
// Three outcomes:
//   - a matching route and method: (route, match, nil)
//   - path matches at least one route, but none for method:
//     (nil, nil, *MethodNotAllowedError) with Allowed populated
//   - path matches no route at all: (nil, nil, ErrNoRouteForRequest)
func (rc *RouteCollection) Resolve(method, path string) (*route.Route, *compiler.MatchResult, error) {
	candidates := rc.pathMatches(path)
	if len(candidates) == 0 {
		return nil, nil, ErrNoRouteForRequest
	}

	for _, c := range candidates {
		if c.route.AllowsMethod(method) {
			return c.route, c.match, nil
		}
	}

	allowed := map[string]bool{}
	var ordered []string
	for _, c := range candidates {
		for _, m := range c.route.AllowedMethods() {
			if !allowed[m] {
				allowed[m] = true
				ordered = append(ordered, m)
			}
		}
	}
	return nil, nil, &MethodNotAllowedError{Path: path, Allowed: ordered}
}

type duplicateRouteNameError struct {
	name string
}

func (e *duplicateRouteNameError) Error() string {
	return "router: duplicate route name " + e.name
}

func (e *duplicateRouteNameError) Is(target error) bool {
	return target == ErrDuplicateRouteName
}

func (e *duplicateRouteNameError) Unwrap() error {
	return ErrDuplicateRouteName
}
