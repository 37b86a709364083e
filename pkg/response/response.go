// Package response writes JSON HTTP responses.
//
// Success bodies are the records themselves (no envelope); every error
// body has the single shape {"error": <human-readable message>}.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
)

type errorBody struct {
	Error string `json:"error"`
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends a 200 with v as the body.
func JSON(w http.ResponseWriter, v any) {
	write(w, http.StatusOK, v)
}

// Created sends a 201 with v as the body.
func Created(w http.ResponseWriter, v any) {
	write(w, http.StatusCreated, v)
}

// NoContent sends an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, errorBody{Error: message})
}

// FromError maps err's kind to a status code and sends its message.
func FromError(w http.ResponseWriter, err error) {
	Error(w, apperr.HTTPStatus(err), err.Error())
}
