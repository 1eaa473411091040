// Package httpx carries the JSON envelope every quantum API endpoint
// speaks: {success, data?, error?}. The client side decodes it; the write
// helpers exist for the test stub.
package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Envelope wraps every API payload. Data is left raw so callers can decode
// it into the shape the endpoint documents.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DecodeEnvelope reads a response body and unpacks the envelope. It does
// not interpret the Success flag; that is the caller's contract to enforce.
func DecodeEnvelope(r io.Reader) (*Envelope, error) {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}
	return &env, nil
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess wraps v in a success envelope.
func WriteSuccess(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "encode data: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// WriteError wraps msg in a failure envelope. The API reports most domain
// failures this way with HTTP 200; the status code only goes non-2xx for
// transport-level problems.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Envelope{Success: false, Error: msg})
}
