package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NetworkErrorDetail is the detail carried by errors whose request failed
// before any HTTP response was received.
const NetworkErrorDetail = "Network error occurred"

// DefaultErrorDetail is the fallback detail when the server's error body
// carries no usable "detail" field.
const DefaultErrorDetail = "An error occurred"

// Error represents a failed API call.
//
// StatusCode is the HTTP status code of the response, or 0 when the request
// failed before receiving a response (network unreachable, DNS, etc).
type Error struct {
	Method string
	URL    string

	// Detail is the human-readable message from the response body's
	// "detail" field, or a generic fallback.
	Detail string

	StatusCode int

	// ErrorCode is the machine-readable "error_code" field, when present.
	ErrorCode string

	// Cause is the underlying error (transport error, context cancellation).
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if strings.TrimSpace(e.Method) != "" {
		b.WriteString(strings.ToUpper(strings.TrimSpace(e.Method)))
		b.WriteString(" ")
	}
	if strings.TrimSpace(e.URL) != "" {
		b.WriteString(strings.TrimSpace(e.URL))
		b.WriteString(": ")
	}
	if e.StatusCode != 0 {
		b.WriteString(fmt.Sprintf("http %d", e.StatusCode))
		if t := strings.TrimSpace(http.StatusText(e.StatusCode)); t != "" {
			b.WriteString(" ")
			b.WriteString(t)
		}
	} else {
		b.WriteString("request failed")
	}
	if strings.TrimSpace(e.Detail) != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if strings.TrimSpace(e.ErrorCode) != "" {
		b.WriteString(" (")
		b.WriteString(strings.TrimSpace(e.ErrorCode))
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts *Error.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNetworkError reports whether err means the server was never reached.
func IsNetworkError(err error) bool {
	ae, ok := AsError(err)
	return ok && ae.StatusCode == 0
}

func IsStatus(err error, code int) bool {
	ae, ok := AsError(err)
	return ok && ae.StatusCode == code
}

// UnknownErrorDetail is surfaced for failures that are neither API errors
// nor ordinary error values.
const UnknownErrorDetail = "An unknown error occurred"

// Message normalizes any failure into the single string surfaced to users:
// API errors contribute their detail (or the caller's fallback when the
// detail is empty), ordinary errors pass through unchanged, anything else
// becomes a generic unknown-error message.
func Message(err error, fallback string) string {
	if ae, ok := AsError(err); ok {
		if strings.TrimSpace(ae.Detail) != "" {
			return ae.Detail
		}
		return fallback
	}
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return UnknownErrorDetail
}

// errorEnvelope is the JSON body the API returns for non-2xx responses.
type errorEnvelope struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code"`
}

func errorFromResponse(method, url string, status int, raw []byte) *Error {
	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)
	detail := strings.TrimSpace(env.Detail)
	if detail == "" {
		detail = DefaultErrorDetail
	}
	return &Error{
		Method:     method,
		URL:        url,
		Detail:     detail,
		StatusCode: status,
		ErrorCode:  env.ErrorCode,
	}
}
