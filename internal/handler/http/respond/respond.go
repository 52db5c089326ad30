// Package respond writes the JSON envelope shared by every endpoint:
//
//	{"success": bool, "data": T, "error": string, "total": n, "page": n, "pageSize": n}
//
// Internal error details are logged (sanitized) and never returned to clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Envelope is the response body of every API endpoint.
type Envelope struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Total    *int   `json:"total,omitempty"`
	Page     *int   `json:"page,omitempty"`
	PageSize *int   `json:"pageSize,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// OK writes a 200 success envelope carrying data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Paged writes a 200 success envelope with pagination fields.
// total is the size of the full result set, not len(data).
func Paged(w http.ResponseWriter, data any, total, page, pageSize int) {
	JSON(w, http.StatusOK, Envelope{
		Success:  true,
		Data:     data,
		Total:    &total,
		Page:     &page,
		PageSize: &pageSize,
	})
}

// Fail writes a failure envelope with a user-facing message.
func Fail(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, Envelope{Success: false, Error: msg})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// SafeError writes a failure envelope for err.
//
// An *AppError supplies its own status and user message; server errors
// (5xx) have their internal error logged with secrets masked. Any other
// error becomes a 500 with a generic message.
func SafeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewAppError(http.StatusInternalServerError, "internal server error", err)
	}

	if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
		logger.Error("application error",
			slog.String("status", http.StatusText(appErr.Code)),
			slog.Int("code", appErr.Code),
			slog.String("user_message", appErr.UserMsg),
			slog.String("error", SanitizeError(appErr.Err)))
	}

	Fail(w, appErr.Code, appErr.UserMsg)
}
