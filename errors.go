package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTemplate indicates a route template is malformed.
	ErrInvalidTemplate = errors.New("router: invalid route template")

	// ErrDuplicateSegment indicates a template declares the same segment name twice.
	ErrDuplicateSegment = errors.New("router: duplicate segment name in template")

	// ErrNoRouteForRequest indicates no declared route's path matched the request.
	ErrNoRouteForRequest = errors.New("router: no route matched the request path")

	// ErrUnknownController indicates a string/pair handler's controller identifier
	// could not be resolved by the configured ControllerContainer.
	ErrUnknownController = errors.New("router: unknown controller")

	// ErrUnknownMethod indicates a resolved controller has no such method.
	ErrUnknownMethod = errors.New("router: unknown controller method")

	// ErrUnresolvedParameterType indicates a handler parameter's declared type
	// has no registered resolver.
	ErrUnresolvedParameterType = errors.New("router: no resolver registered for parameter type")

	// ErrDuplicateRouteName indicates Route.Name was called with a name already
	// registered by another route.
	ErrDuplicateRouteName = errors.New("router: duplicate route name")

	// ErrRoutesFrozen indicates a declaration call was made after the router
	// began serving requests.
	ErrRoutesFrozen = errors.New("router: cannot declare routes after the router is frozen")
)

// MethodNotAllowedError is raised when a request's path matches one or more
// declared routes but none of them support the request method. It carries
// the set of methods that ARE supported for the path, in first-seen order,
// so callers can render an Allow header without a second lookup.
type MethodNotAllowedError struct {
	Path    string
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("router: method not allowed for %q (allowed: %s)", e.Path, strings.Join(e.Allowed, ", "))
}

// Is reports whether target is a *MethodNotAllowedError, so callers can use
// errors.Is(err, new(MethodNotAllowedError)) style checks if desired. Most
// callers should instead use errors.As to recover the Allowed slice.
func (e *MethodNotAllowedError) Is(target error) bool {
	_, ok := target.(*MethodNotAllowedError)
	return ok
}
