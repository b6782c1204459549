package rest

import (
	"context"
	"net/url"
)

// Envelope is the wrapper every successful call resolves to: the decoded
// JSON body plus a success marker.
type Envelope[T any] struct {
	Data    T
	Success bool
}

// GetJSON issues a GET request and wraps the decoded body in an Envelope.
func GetJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (Envelope[T], error) {
	var out T
	if err := c.Get(ctx, path, query, &out); err != nil {
		return Envelope[T]{}, err
	}
	return Envelope[T]{Data: out, Success: true}, nil
}

// PostJSON issues a POST request with a JSON body and wraps the decoded
// response body in an Envelope.
func PostJSON[T any](ctx context.Context, c *Client, path string, body any) (Envelope[T], error) {
	var out T
	if err := c.Post(ctx, path, body, &out); err != nil {
		return Envelope[T]{}, err
	}
	return Envelope[T]{Data: out, Success: true}, nil
}

// PutJSON issues a PUT request with a JSON body.
func PutJSON[T any](ctx context.Context, c *Client, path string, body any) (Envelope[T], error) {
	var out T
	if err := c.Put(ctx, path, body, &out); err != nil {
		return Envelope[T]{}, err
	}
	return Envelope[T]{Data: out, Success: true}, nil
}

// PatchJSON issues a PATCH request with a JSON body.
func PatchJSON[T any](ctx context.Context, c *Client, path string, body any) (Envelope[T], error) {
	var out T
	if err := c.Patch(ctx, path, body, &out); err != nil {
		return Envelope[T]{}, err
	}
	return Envelope[T]{Data: out, Success: true}, nil
}
