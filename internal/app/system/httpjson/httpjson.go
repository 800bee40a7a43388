// Package httpjson is the shared response/error shaping layer for the API.
//
// Most routes reply with the `{success, message, ...}` envelope; a few legacy
// routes return a bare array or object and use Raw directly. Handlers decide
// the shape, this package only does the encoding and status plumbing.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Envelope is the common response wrapper. Extra carries route-specific
// payload keys (e.g. "supply", "donors") merged beside success/message.
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Extra   map[string]any `json:"-"`
}

// MarshalJSON flattens Extra into the top-level object.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+2)
	out["success"] = e.Success
	if e.Message != "" {
		out["message"] = e.Message
	}
	for k, v := range e.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// Raw writes v as the entire JSON body. Used by the legacy bare-shape routes
// (supply list, testimonial list, donation totals).
func Raw(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a success envelope with optional payload keys.
func OK(w http.ResponseWriter, status int, message string, extra map[string]any) {
	Raw(w, status, Envelope{Success: true, Message: message, Extra: extra})
}

// Fail writes a failure envelope. The message is client-visible, so callers
// choose between a taxonomy message and an internal error passthrough.
func Fail(w http.ResponseWriter, status int, message string) {
	Raw(w, status, Envelope{Success: false, Message: message})
}

// Decode reads the request body as JSON into dst. An empty body decodes to
// the zero value rather than an error, matching the permissive intake of the
// create endpoints (missing fields persist as empties).
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
