package rest

import (
	"net/http"
	"time"
)

type Option interface{ apply(*Config) }

type optionFunc func(*Config)

func (f optionFunc) apply(c *Config) { f(c) }

func WithBaseURL(baseURL string) Option {
	return optionFunc(func(c *Config) { c.BaseURL = baseURL })
}

// WithToken sets the initial bearer token (e.g. restored from a prior
// session). The OnTokenChange callback is not fired for the initial value.
func WithToken(token string) Option {
	return optionFunc(func(c *Config) { c.Token = token })
}

func WithTokenChange(fn TokenChangeFunc) Option {
	return optionFunc(func(c *Config) { c.OnTokenChange = fn })
}

func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *Config) { c.Timeout = d })
}

func WithTransport(rt http.RoundTripper) Option {
	return optionFunc(func(c *Config) { c.Transport = rt })
}

func WithDefaultHeader(key, value string) Option {
	return optionFunc(func(c *Config) {
		if c.DefaultHeaders == nil {
			c.DefaultHeaders = make(http.Header)
		}
		c.DefaultHeaders.Set(key, value)
	})
}

func WithUserAgent(ua string) Option {
	return optionFunc(func(c *Config) { c.UserAgent = ua })
}

func WithMaxErrorBodyBytes(n int64) Option {
	return optionFunc(func(c *Config) { c.MaxErrorBodyBytes = n })
}

func WithRequestID(header string, fn RequestIDFunc) Option {
	return optionFunc(func(c *Config) {
		c.RequestIDHeader = header
		c.NewRequestID = fn
	})
}
