package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
)

// Responder is implemented by a handler's return value when it wants full
// control over how it is written to the client — an explicit response
// object. Returning a Responder always passes through unchanged; it is
// never re-coerced.
type Responder interface {
	WriteResponse(w http.ResponseWriter) error
}

// writeResponse coerces a handler's return value into an HTTP response,
// per the module's response-coercion rules: a Responder passes through
// untouched; a string or numeric scalar is written as plain text; a bool,
// slice, map, or struct is marshaled as JSON; nil (a handler with no
// return value, or an explicit nil) produces an empty 200.
func writeResponse(w http.ResponseWriter, value any) error {
	if value == nil {
		w.WriteHeader(http.StatusOK)
		return nil
	}

	if responder, ok := value.(Responder); ok {
		return responder.WriteResponse(w)
	}

	switch v := value.(type) {
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(v))
		return err
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := fmt.Fprintf(w, "%v", value)
		return err
	case reflect.Bool, reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Ptr:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		return json.NewEncoder(w).Encode(value)
	default:
		w.WriteHeader(http.StatusOK)
		return nil
	}
}

// JSON is a convenience Responder for handlers that want to set a status
// code alongside a JSON body.
type JSON struct {
	Status int
	Body   any
}

// WriteResponse implements Responder.
func (j JSON) WriteResponse(w http.ResponseWriter) error {
	status := j.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(j.Body)
}

// Text is a convenience Responder for a plain-text body with an explicit
// status code.
type Text struct {
	Status int
	Body   string
}

// WriteResponse implements Responder.
func (t Text) WriteResponse(w http.ResponseWriter) error {
	status := t.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(t.Body))
	return err
}
