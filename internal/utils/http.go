package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON shape of every error response: {"detail": "..."}.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// internalErrorBody is sent when a response cannot be encoded.
var internalErrorBody = []byte(`{"detail":"Internal server error"}`)

// WriteJSON encodes data and writes it with statusCode. If data cannot be
// encoded, the client gets a 500 with the generic detail body instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes an error response with a single human-readable detail.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, ErrorBody{Detail: detail}, statusCode)
}
