package recovery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corewire/gonzo-router"
	"github.com/stretchr/testify/assert"
)

func panicsWith(v any) router.MiddlewareFunc {
	return func(c *router.Context) { panic(v) }
}

func TestRecovery_CatchesPanicAndReturns500(t *testing.T) {
	mw := New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.RunChain([]router.MiddlewareFunc{mw, panicsWith("boom")}, nil, rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecovery_NoPanicIsNoOp(t *testing.T) {
	mw := New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.RunChain([]router.MiddlewareFunc{mw}, nil, rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecovery_CustomHandlerIsInvoked(t *testing.T) {
	called := false
	mw := New(WithHandler(func(c *router.Context, err any) {
		called = true
		c.Writer.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.RunChain([]router.MiddlewareFunc{mw, panicsWith("fail")}, nil, rec, req)
	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRecovery_CustomLoggerReceivesError(t *testing.T) {
	var captured any
	mw := New(WithLogger(func(c *router.Context, err any, stack []byte) {
		captured = err
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.RunChain([]router.MiddlewareFunc{mw, panicsWith("custom")}, nil, rec, req)
	assert.Equal(t, "custom", captured)
}

func TestRecovery_StackSizeCapsCapturedTrace(t *testing.T) {
	var stackLen int
	mw := New(WithStackSize(16), WithLogger(func(c *router.Context, err any, stack []byte) {
		stackLen = len(stack)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.RunChain([]router.MiddlewareFunc{mw, panicsWith("x")}, nil, rec, req)
	assert.LessOrEqual(t, stackLen, 16)
}

func TestRecovery_StackTraceDisabledCapturesNothing(t *testing.T) {
	var stack []byte
	mw := New(WithStackTrace(false), WithLogger(func(c *router.Context, err any, s []byte) {
		stack = s
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.RunChain([]router.MiddlewareFunc{mw, panicsWith("x")}, nil, rec, req)
	assert.Empty(t, stack)
}
