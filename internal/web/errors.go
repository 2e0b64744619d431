package web

// errors.go maps handler failures to JSON error bodies.
//
// Codes:
//
//	TR001   unknown standard            400
//	TR002   missing text parameter      400
//	REG001  unknown category            400
//	SRC001  record source failed        503
//	RATE001 rate limit exceeded         429
//	INT001  unexpected error            500
//
// The technical error is logged with the request id; clients only see the
// message.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JonMunkholm/toponyms/internal/logging"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadStandard = "TR001"
	CodeMissingText = "TR002"
	CodeBadCategory = "REG001"
	CodeSource      = "SRC001"
	CodeRateLimited = "RATE001"
	CodeInternal    = "INT001"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// apiError carries the response status and code alongside the cause.
type apiError struct {
	status  int
	code    string
	message string
	err     error
}

func (e *apiError) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.err }

var (
	errMissingText = &apiError{status: http.StatusBadRequest, code: CodeMissingText, message: "text parameter is required"}
	errRateLimited = &apiError{status: http.StatusTooManyRequests, code: CodeRateLimited, message: "rate limit exceeded"}
)

func badStandard(err error) error {
	return &apiError{status: http.StatusBadRequest, code: CodeBadStandard, message: "unknown standard; use a, b or k", err: err}
}

func badCategory(err error) error {
	return &apiError{status: http.StatusBadRequest, code: CodeBadCategory, message: "unknown category", err: err}
}

func sourceFailed(err error) error {
	return &apiError{status: http.StatusServiceUnavailable, code: CodeSource, message: "records are unavailable", err: err}
}

// respondError logs err and writes its JSON form.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := &apiError{status: http.StatusInternalServerError, code: CodeInternal, message: "internal error", err: err}
	errors.As(err, &apiErr)

	logger := logging.FromContext(r.Context()).With(
		"path", r.URL.Path,
		"method", r.Method,
		"status", apiErr.status,
		"code", apiErr.code,
		"error", err.Error(),
	)
	if apiErr.status >= http.StatusInternalServerError {
		logger.Error("request error")
	} else {
		logger.Warn("request rejected")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(apiErr.status),
		Message: apiErr.message,
		Code:    apiErr.code,
	})
}
