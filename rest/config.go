package rest

import (
	"net/http"
	"time"
)

// DefaultBaseURL is used when no base URL is configured. Deployments behind
// the dashboard proxy pass their own origin; this default matches the local
// development backend.
const DefaultBaseURL = "http://localhost:8000/api/v1"

const DefaultMaxErrorBodyBytes int64 = 64 << 10 // 64KiB

// Config configures a Client. Use DefaultConfig() as a baseline.
type Config struct {
	// BaseURL is the absolute prefix every path is appended to. No
	// trailing-slash normalization is applied; callers supply paths
	// beginning with "/".
	BaseURL string

	// Token is the initial bearer token ("" means unauthenticated).
	Token string

	// OnTokenChange is invoked on every SetToken call.
	OnTokenChange TokenChangeFunc

	// Timeout bounds a whole request. Zero means no client-side timeout;
	// the request context still applies.
	Timeout time.Duration

	// Transport is the underlying RoundTripper. If nil, a tuned default is used.
	Transport http.RoundTripper

	// DefaultHeaders are copied into every request.
	DefaultHeaders http.Header

	// UserAgent is set when the request does not already have a User-Agent header.
	UserAgent string

	// MaxErrorBodyBytes limits how many bytes of a non-2xx body are read
	// when extracting detail/error_code. If zero, DefaultMaxErrorBodyBytes
	// is used.
	MaxErrorBodyBytes int64

	// RequestIDHeader carries a correlation id on every request, e.g.
	// "X-Request-ID". If empty, request id injection is disabled.
	RequestIDHeader string

	// NewRequestID generates request ids. If nil, a default generator is used.
	NewRequestID RequestIDFunc
}

// DefaultConfig returns a conservative baseline.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Transport:         DefaultTransport(),
		DefaultHeaders:    make(http.Header),
		MaxErrorBodyBytes: DefaultMaxErrorBodyBytes,
		RequestIDHeader:   "X-Request-ID",
		NewRequestID:      DefaultRequestID,
	}
}
