package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses on the ops surface.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code extracts the application error code from err, or "" when err does not
// carry an AppError anywhere in its chain.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Scheduling (SCH) ----

func ErrUnknownHook(hook string) *AppError {
	return New("SCH_001", fmt.Sprintf("No handler registered for hook %q", hook), http.StatusBadRequest)
}

func ErrMalformedArgs(err error) *AppError {
	return Wrap("SCH_002", "Malformed task arguments", http.StatusBadRequest, err)
}

func ErrCancelUnsupported() *AppError {
	return New("SCH_003", "Group cancellation is not supported by the active backend", http.StatusConflict)
}

func ErrScheduleFailed(err error) *AppError {
	return Wrap("SCH_004", "Failed to schedule task", http.StatusInternalServerError, err)
}

func ErrDelayedUnsupported() *AppError {
	return New("SCH_005", "Synchronous backend cannot run delayed tasks", http.StatusConflict)
}

// ---- Retry store (RTY) ----

func ErrRetryNotFound() *AppError {
	return New("RTY_001", "Retry record not found", http.StatusNotFound)
}

func ErrRetryInFlight() *AppError {
	return New("RTY_002", "A retry record is already in flight for this submission", http.StatusConflict)
}

func ErrRetryTerminal() *AppError {
	return New("RTY_003", "Retry record is in a terminal state", http.StatusConflict)
}

func ErrInvalidSubmissionRef() *AppError {
	return New("RTY_004", "Submission ref must be a UUID", http.StatusBadRequest)
}

// ---- Webhook delivery (WHK) ----

func ErrEndpointInactive() *AppError {
	return New("WHK_001", "Webhook endpoint is inactive", http.StatusConflict)
}

func ErrPayloadEncoding(err error) *AppError {
	return Wrap("WHK_002", "Failed to encode webhook payload", http.StatusInternalServerError, err)
}

// ---- Configuration / replay (CFG) ----

func ErrInstanceNotFound(ref string) *AppError {
	return New("CFG_001", fmt.Sprintf("Instance %s not found", ref), http.StatusNotFound)
}

func ErrConnectorMissing() *AppError {
	return New("CFG_002", "No connector configured for instance", http.StatusUnprocessableEntity)
}

func ErrCredentialsDecrypt(err error) *AppError {
	return Wrap("CFG_003", "Failed to decrypt connector credentials", http.StatusInternalServerError, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrQueueError(err error) *AppError {
	return Wrap("SYS_002", "Task queue backend error", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error for the ops surface.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
