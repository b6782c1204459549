// Package orgs wraps the transport core for the organization-scoped resource
// routes: organizations, organization members, teams, team members, LLM
// providers and LLM models.
//
// List and item endpoints wrap their payload one level deeper than the
// transport envelope: the JSON body itself is {"data": <payload>}. Every
// method here unwraps both levels. This is a fixed wire contract of the
// backend, not something to flatten away.
package orgs

import (
	"context"

	"github.com/llm-dev-ops/governance-go/rest"
)

// API exposes the resource routes. It holds no state of its own; every
// method is one HTTP call through the client.
type API struct {
	client *rest.Client
}

func New(client *rest.Client) *API {
	return &API{client: client}
}

// payload is the inner domain envelope around list/item responses.
type payload[T any] struct {
	Data T `json:"data"`
}

func getData[T any](ctx context.Context, c *rest.Client, path string) (T, error) {
	res, err := rest.GetJSON[payload[T]](ctx, c, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Data.Data, nil
}

func postData[T any](ctx context.Context, c *rest.Client, path string, body any) (T, error) {
	res, err := rest.PostJSON[payload[T]](ctx, c, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Data.Data, nil
}

func putData[T any](ctx context.Context, c *rest.Client, path string, body any) (T, error) {
	res, err := rest.PutJSON[payload[T]](ctx, c, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Data.Data, nil
}
