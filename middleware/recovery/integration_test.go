package recovery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corewire/gonzo-router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecovery_IntegratesWithRouterDispatch exercises recovery.New as a
// route's actual middleware (not RunChain directly), through a real
// Router, confirming the chain short-circuits before the handler's
// response would have been written.
func TestRecovery_IntegratesWithRouterDispatch(t *testing.T) {
	r := router.New()
	r.UseNamed("recover", New())

	rt := r.GET("/boom", func(c *router.Context) {
		panic("integration boom")
	})
	rt.SetMiddleware("recover")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecovery_DoesNotInterfereWithNormalResponses(t *testing.T) {
	r := router.New()
	r.UseNamed("recover", New())

	rt := r.GET("/ok", func(c *router.Context) string {
		return "fine"
	})
	rt.SetMiddleware("recover")

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}
