package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter struct{ name string }

func (g *greeter) Hello() string { return "hello " + g.name }

func TestDefaultContainer_NewReturnsConstructedInstance(t *testing.T) {
	c := NewDefaultContainer()
	c.Register("Greeter", func() any { return &greeter{name: "world"} })

	instance, err := c.New("Greeter")
	require.NoError(t, err)
	assert.Equal(t, "hello world", instance.(*greeter).Hello())
}

func TestDefaultContainer_NewUnregisteredIsError(t *testing.T) {
	c := NewDefaultContainer()
	_, err := c.New("Missing")
	assert.True(t, errors.Is(err, ErrUnknownController))
}

func TestMethodOf_FindsExportedMethod(t *testing.T) {
	m, ok := methodOf(&greeter{name: "x"}, "Hello")
	require.True(t, ok)
	out := m.Call(nil)
	assert.Equal(t, "hello x", out[0].String())
}

func TestMethodOf_UnknownMethodIsNotOK(t *testing.T) {
	_, ok := methodOf(&greeter{name: "x"}, "Missing")
	assert.False(t, ok)
}
