package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResponse_NilProducesEmpty200(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWriteResponse_StringIsPlainText(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, "hello"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestWriteResponse_NumberIsPlainText(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, 42))

	assert.Equal(t, "42", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestWriteResponse_SliceIsJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, []string{"a", "b"}))

	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestWriteResponse_MapIsJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, map[string]any{"ok": true}))

	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestWriteResponse_BoolIsJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, true))

	assert.JSONEq(t, `true`, rec.Body.String())
}

func TestWriteResponse_ResponderPassesThroughUnchanged(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, writeResponse(rec, JSON{Status: http.StatusCreated, Body: map[string]string{"id": "1"}}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1"}`, rec.Body.String())
}

func TestJSON_DefaultsStatusTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, JSON{Body: "x"}.WriteResponse(rec))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestText_WritesPlainBodyWithStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Text{Status: http.StatusTeapot, Body: "short and stout"}.WriteResponse(rec))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
