package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ignite/bulkmail/internal/pkg/logger"
)

// Envelope is the standard body for all API responses. Successful
// responses may carry extra named fields next to these two.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Payload holds the extra top-level fields of a success response.
type Payload map[string]any

// JSON writes a JSON response with the given status code. The data is
// serialized and Content-Type is set automatically.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[httputil] JSON encode error: %v", err)
	}
}

// OK writes a 200 success envelope merged with payload.
func OK(w http.ResponseWriter, message string, payload Payload) {
	success(w, http.StatusOK, message, payload)
}

// Created writes a 201 success envelope merged with payload.
func Created(w http.ResponseWriter, message string, payload Payload) {
	success(w, http.StatusCreated, message, payload)
}

func success(w http.ResponseWriter, status int, message string, payload Payload) {
	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	body["message"] = message
	JSON(w, status, body)
}

// Error writes a failure envelope. Use for client errors (4xx).
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 error.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// NotFound writes a 404 error.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError writes a 500 error. Logs the real error but returns the
// given public message to the client (never leak internals).
func InternalError(w http.ResponseWriter, message string, err error) {
	logger.Error("internal error", "message", message, "error", err)
	Error(w, http.StatusInternalServerError, message)
}

var validate = validator.New()

// Decode reads JSON from the request body into dst and validates it
// against its `validate` struct tags. Returns false and writes a 400
// response if either step fails.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, "invalid JSON: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		BadRequest(w, ValidationMessage(err))
		return false
	}
	return true
}

// ValidationMessage turns validator errors into a short client message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), describeTag(fe.Tag())))
	}
	return strings.Join(parts, "; ")
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "email":
		return "not a valid email"
	case "min":
		return "too short"
	default:
		return "invalid"
	}
}
