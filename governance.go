// Package governance is the Go SDK for the LLM Governance Dashboard API.
//
// An SDK bundles one transport client with the auth and resource API
// modules. Construct one per process (or per test) and inject it; there is
// no implicit global instance.
//
//	sdk, err := governance.New(
//		rest.WithBaseURL("https://dashboard.example.com/api/v1"),
//		rest.WithToken(restoredToken),
//		rest.WithTokenChange(persistToken),
//	)
//	if err != nil { ... }
//	user, err := sdk.Auth.CurrentUser(ctx)
//	organizations, err := sdk.Organizations.ListOrganizations(ctx)
package governance

import (
	"github.com/llm-dev-ops/governance-go/auth"
	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
)

// SDK bundles the transport client and the API modules that share it.
type SDK struct {
	Client        *rest.Client
	Auth          *auth.API
	Organizations *orgs.API
}

func New(opts ...rest.Option) (*SDK, error) {
	client, err := rest.New(opts...)
	if err != nil {
		return nil, err
	}
	return &SDK{
		Client:        client,
		Auth:          auth.New(client),
		Organizations: orgs.New(client),
	}, nil
}

// SetToken replaces the bearer token on the shared client.
func (s *SDK) SetToken(token string) { s.Client.SetToken(token) }

// Token returns the bearer token currently held by the shared client.
func (s *SDK) Token() string { return s.Client.Token() }

// BaseURL returns the base URL requests are issued against.
func (s *SDK) BaseURL() string { return s.Client.BaseURL() }
