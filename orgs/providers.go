package orgs

import (
	"context"
	"fmt"
)

type ProviderParams struct {
	Name     string `json:"name,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Enabled  *bool  `json:"enabled,omitempty"`
}

func (a *API) ListProviders(ctx context.Context, organizationID string) ([]LLMProvider, error) {
	return getData[[]LLMProvider](ctx, a.client, fmt.Sprintf("/organizations/%s/providers", organizationID))
}

func (a *API) GetProvider(ctx context.Context, providerID string) (LLMProvider, error) {
	return getData[LLMProvider](ctx, a.client, "/providers/"+providerID)
}

func (a *API) CreateProvider(ctx context.Context, organizationID string, params ProviderParams) (LLMProvider, error) {
	return postData[LLMProvider](ctx, a.client, fmt.Sprintf("/organizations/%s/providers", organizationID), params)
}

func (a *API) UpdateProvider(ctx context.Context, providerID string, params ProviderParams) (LLMProvider, error) {
	return putData[LLMProvider](ctx, a.client, "/providers/"+providerID, params)
}

func (a *API) DeleteProvider(ctx context.Context, providerID string) error {
	return a.client.Delete(ctx, "/providers/"+providerID)
}
