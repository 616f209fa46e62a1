package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

type errorResponse struct {
	Detail any `json:"detail"`
}

// writeJSON encodes v before writing the status, so an encode failure
// is sent as a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Detail: "encoding response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Detail: msg})
}

// writeDecodeError maps a Decode failure to its status code.
func writeDecodeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: verr.Fields})
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, ErrInvalidJSON):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
