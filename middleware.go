package router

// MiddlewareFunc is a single link in a request's middleware chain. It must
// call Context.Next to continue to the next link; omitting that call
// short-circuits the chain.
type MiddlewareFunc func(*Context)

// MiddlewareChain owns the named middleware and middleware groups a route
// can reference by id. Route.Middleware holds ids, not functions, so a
// route declaration never needs the concrete middleware value in scope —
// it is resolved once, here, at request-dispatch time.
type MiddlewareChain struct {
	named  map[string]MiddlewareFunc
	groups map[string][]string
}

// NewMiddlewareChain builds an empty chain registry.
func NewMiddlewareChain() *MiddlewareChain {
	return &MiddlewareChain{
		named:  make(map[string]MiddlewareFunc),
		groups: make(map[string][]string),
	}
}

// Register binds a name to a middleware function so routes and groups can
// reference it by id.
func (mc *MiddlewareChain) Register(name string, mw MiddlewareFunc) {
	mc.named[name] = mw
}

// RegisterGroup binds a name to an ordered list of other ids (which may
// themselves be groups), expanded recursively when a chain is built.
func (mc *MiddlewareChain) RegisterGroup(name string, ids ...string) {
	mc.groups[name] = ids
}

// expand flattens a list of ids into a list of concrete middleware
// functions, recursively expanding any id that names a group and dropping
// ids with no registration (silently, as an unconfigured middleware id on
// a route is a declaration-time authoring mistake, not a request-time
// fault). Router.add rejects unknown ids a route carries when it is
// declared; ids set on the route afterwards (e.g. via SetMiddleware) are
// not checked there, and an unknown one is dropped here.
func (mc *MiddlewareChain) expand(ids []string, seen map[string]bool, out []MiddlewareFunc) []MiddlewareFunc {
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if group, ok := mc.groups[id]; ok {
			out = mc.expand(group, seen, out)
			continue
		}
		if fn, ok := mc.named[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// Resolve returns true if id names either a registered middleware or a
// registered group, used by Router.add to fail fast on a typo'd
// middleware id rather than silently dropping it at request time.
func (mc *MiddlewareChain) Resolve(id string) bool {
	if _, ok := mc.named[id]; ok {
		return true
	}
	_, ok := mc.groups[id]
	return ok
}

// Expand flattens ids (route middleware plus any folded-in group
// middleware) into the ordered list of functions a Context runs, in
// declaration order with duplicates (by id) collapsed to their first
// occurrence.
func (mc *MiddlewareChain) Expand(ids []string) []MiddlewareFunc {
	return mc.expand(ids, make(map[string]bool), nil)
}
