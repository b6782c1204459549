package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter can be used to throttle outgoing requests.
// It should block until a token is available or ctx is canceled.
// *rate.Limiter from golang.org/x/time satisfies it.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// NewRateLimiter returns a limiter allowing rps requests per second with the
// given burst.
func NewRateLimiter(rps float64, burst int) RateLimiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}

type BeforeHook func(req *http.Request) error

type AfterHook func(req *http.Request, resp *http.Response, err error, dur time.Duration)

// LogHook returns an AfterHook that logs every request outcome: debug on
// success, warn on transport or HTTP failure.
func LogHook(logger *slog.Logger) AfterHook {
	return func(req *http.Request, resp *http.Response, err error, dur time.Duration) {
		if logger == nil {
			return
		}
		attrs := []any{
			"method", req.Method,
			"url", req.URL.String(),
			"duration", dur,
		}
		switch {
		case err != nil:
			logger.Warn("request failed", append(attrs, "error", err)...)
		case resp.StatusCode >= 400:
			logger.Warn("request rejected", append(attrs, "status", resp.StatusCode)...)
		default:
			logger.Debug("request completed", append(attrs, "status", resp.StatusCode)...)
		}
	}
}

type Middleware func(next http.RoundTripper) http.RoundTripper

func chain(rt http.RoundTripper, mws []Middleware) http.RoundTripper {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		rt = mws[i](rt)
	}
	return rt
}

// RoundTripperFunc adapts a function to an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
