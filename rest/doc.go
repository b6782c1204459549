// Package rest is the transport core of the governance SDK:
// - one client owning the base URL, the bearer token and its change callback
// - request building with JSON encoding and query serialization
// - a uniform error type carrying status code, detail and error code
//   (status code 0 means the server was never reached)
// - hook points for logging/metrics and a middleware seam for injecting
//   transport policies (retry/backoff) without touching domain modules
package rest
