package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Banup3/TaskManager/pkg/httpx"
)

// Error codes shared by the server and the SDK.
const (
	ErrorCodeValidation   = "validation_error"
	ErrorCodeUnauthorized = "unauthorized"
	ErrorCodeDuplicate    = "duplicate_resource"
	ErrorCodeNotFound     = "not_found"
	ErrorCodeServerError  = "server_error"
	ErrorCodeRateLimited  = "rate_limit_exceeded"
)

// FieldError is a single field-level validation failure. Validation reports
// every failing field at once so a client can render all problems together.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the error envelope for every non-2xx response. It implements
// the error interface so the SDK can surface server failures directly, and
// the server handlers use WriteError to encode it.
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Fields carries per-field messages for validation errors.
	Fields []FieldError `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, "; "))
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

var (
	// ErrUnauthorized is returned when the bearer token is missing, invalid
	// or expired.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "authentication required",
	}

	// ErrInvalidCredentials is returned on login failure. The message never
	// reveals whether the email or the password was wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "invalid email or password",
	}

	// ErrDuplicateEmail is returned when signing up with an email that is
	// already registered.
	ErrDuplicateEmail = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeDuplicate,
		Message:    "email is already registered",
	}

	// ErrTaskNotFound is returned when a task does not exist. Ownership
	// mismatches are reported identically so task existence never leaks.
	ErrTaskNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "task not found",
	}

	// ErrServer is returned for unexpected persistence or infrastructure
	// failures; store internals are never exposed.
	ErrServer = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "invalid request body",
	}
)

// NewValidationError wraps field-level failures into a 400 response.
func NewValidationError(fields []FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "validation failed",
		Fields:     fields,
	}
}

// parseErrorResponse turns a non-2xx response body into a typed error. The
// UI layer relies on this never failing: anything unparseable degrades to a
// generic APIError with the HTTP status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    http.StatusText(resp.StatusCode),
	}
}
