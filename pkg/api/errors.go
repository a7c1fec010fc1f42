package api

import (
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stewardhq/steward/pkg/fault"
)

// ErrorResponse is the standard error envelope for non-chat endpoints.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
	RequestID  string `json:"request_id"`
}

// renderFault writes the error envelope for a failed request. Internal
// faults get logged and a generic message; every other kind surfaces its
// own message to the caller.
func renderFault(c *echo.Context, err error) error {
	kind := fault.KindOf(err)
	status := httpStatusOf(kind)

	message := err.Error()
	if kind == fault.KindInternal || kind == fault.KindNone {
		slog.Error("Unexpected handler error", "error", err,
			"request_id", requestID(c))
		kind = fault.KindInternal
		message = "internal server error"
	}

	return c.JSON(status, &ErrorResponse{
		Error:      string(kind),
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		RequestID:  requestID(c),
	})
}

// invalidRequest is shorthand for a bad request envelope.
func invalidRequest(c *echo.Context, message string) error {
	return renderFault(c, fault.Invalid(message))
}

// httpStatusOf maps a fault kind to its HTTP status code.
func httpStatusOf(kind fault.Kind) int {
	switch kind {
	case fault.KindInvalid:
		return http.StatusBadRequest
	case fault.KindUnauthorized:
		return http.StatusUnauthorized
	case fault.KindForbidden:
		return http.StatusForbidden
	case fault.KindNotFound:
		return http.StatusNotFound
	case fault.KindConflict:
		return http.StatusConflict
	case fault.KindTimeout:
		return http.StatusGatewayTimeout
	case fault.KindCancelled:
		return http.StatusRequestTimeout
	case fault.KindCircuitOpen, fault.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
