package router

import (
	"fmt"
	"reflect"
	"strings"
)

// ControllerContainer is the dependency-injection boundary: it resolves a
// controller identifier (as declared in a string or pair Handler) to a
// live instance. The router asks the container for a fresh instance once
// per request per controller id — a richer container may memoize
// internally, but the interface does not require it.
type ControllerContainer interface {
	New(id string) (any, error)
}

// DefaultContainer is a reflect-based ControllerContainer usable without
// any application-supplied wiring: controllers are registered as zero-arg
// constructor functions keyed by id.
type DefaultContainer struct {
	constructors map[string]func() any
}

// NewDefaultContainer builds an empty DefaultContainer.
func NewDefaultContainer() *DefaultContainer {
	return &DefaultContainer{constructors: make(map[string]func() any)}
}

// Register binds a controller id to a zero-argument constructor.
func (c *DefaultContainer) Register(id string, constructor func() any) {
	c.constructors[id] = constructor
}

// New implements ControllerContainer.
func (c *DefaultContainer) New(id string) (any, error) {
	ctor, ok := c.constructors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownController, id)
	}
	return ctor(), nil
}

// methodOf reflects over instance looking for a method named name,
// returning a bound reflect.Value ready to be Called with resolved
// arguments. Used for controller-string/pair handlers (instance comes
// from the container). A name with a lower-case initial ("index" in
// "UserController@index") also finds the exported method ("Index").
func methodOf(instance any, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(instance)
	m := v.MethodByName(name)
	if !m.IsValid() && name != "" {
		m = v.MethodByName(strings.ToUpper(name[:1]) + name[1:])
	}
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	return m, true
}
