package router

import (
	"strconv"
	"strings"

	"github.com/corewire/gonzo-router/compiler"
)

// Resolver produces a handler argument's value from a matched path
// segment. raw is the segment's captured string (nil if the segment was
// an absent optional), match is the full match result (so a resolver can
// look at sibling segments), name is the parameter's declared name, and
// index is its position among the handler's resolvable parameters.
type Resolver func(raw *string, match *compiler.MatchResult, name string, index int) (any, error)

// ResolverRegistry is a type-keyed table of Resolvers, one instance per
// Router rather than process-wide static state — this lets two Routers in
// the same process register different resolvers for the same type name
// without interfering with each other.
type ResolverRegistry struct {
	byType map[string]Resolver
}

// NewResolverRegistry builds a registry pre-populated with the built-in
// resolvers for the scalar types a path segment can be coerced to.
func NewResolverRegistry() *ResolverRegistry {
	r := &ResolverRegistry{byType: make(map[string]Resolver)}
	registerDefaultResolvers(r)
	return r
}

// Register binds a resolver to a type name, overriding any built-in with
// the same name.
func (r *ResolverRegistry) Register(typeName string, fn Resolver) {
	r.byType[typeName] = fn
}

// Lookup returns the resolver registered for typeName, if any.
func (r *ResolverRegistry) Lookup(typeName string) (Resolver, bool) {
	fn, ok := r.byType[typeName]
	return fn, ok
}

// registerDefaultResolvers installs the built-in resolvers: string
// identity, integer parse-or-zero, boolean truthy-parsing, and a
// split-or-wrap array resolver. The request-scoped collaborator types
// (*http.Request, http.ResponseWriter, *Context) have no entry here;
// Router.resolveArgs supplies them directly.
func registerDefaultResolvers(r *ResolverRegistry) {
	r.byType["string"] = func(raw *string, _ *compiler.MatchResult, _ string, _ int) (any, error) {
		if raw == nil {
			return "", nil
		}
		return *raw, nil
	}

	r.byType["int"] = func(raw *string, _ *compiler.MatchResult, _ string, _ int) (any, error) {
		if raw == nil {
			return 0, nil
		}
		n, err := strconv.Atoi(*raw)
		if err != nil {
			return 0, nil
		}
		return n, nil
	}

	r.byType["bool"] = func(raw *string, _ *compiler.MatchResult, _ string, _ int) (any, error) {
		if raw == nil {
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(*raw)) {
		case "1", "true", "yes", "on":
			return true, nil
		default:
			return false, nil
		}
	}

	r.byType["[]string"] = func(raw *string, _ *compiler.MatchResult, _ string, _ int) (any, error) {
		if raw == nil {
			return []string{}, nil
		}
		if !strings.Contains(*raw, ",") {
			return []string{*raw}, nil
		}
		parts := strings.Split(*raw, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts, nil
	}
}

