package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"todo-api/internal/model"
	"todo-api/internal/todo"
)

// decodeJSON reads a single JSON value from the body into v. Shape problems
// come back as *todo.ValidationError; an oversized body as *http.MaxBytesError.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return bodyError(err)
	}
	if dec.More() {
		return todo.NewValidationError("invalid JSON: multiple JSON values", "json_invalid", "body")
	}
	return nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &maxErr):
		return maxErr
	case errors.Is(err, io.EOF):
		return todo.NewValidationError("field required", "missing", "body")
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return todo.NewValidationError(
			fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			typeErr.Type.Kind().String()+"_type", loc...)
	default:
		return todo.NewValidationError("invalid JSON: "+err.Error(), "json_invalid", "body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

// writeError maps a service or decoding error to its HTTP response.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var maxErr *http.MaxBytesError

	if errors.Is(err, model.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Todo not found")
		return
	}
	if ve, ok := todo.AsValidationError(err); ok {
		writeDetail(w, http.StatusUnprocessableEntity, ve.Fields)
		return
	}
	if errors.As(err, &maxErr) {
		writeDetail(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		return
	}

	logger.Error("request_failed",
		"rid", RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err.Error(),
	)
	writeDetail(w, http.StatusInternalServerError, "internal error")
}
