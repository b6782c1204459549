package orgs

import (
	"context"
	"fmt"
)

type ModelParams struct {
	Name          string `json:"name,omitempty"`
	ContextWindow int    `json:"context_window,omitempty"`
	Enabled       *bool  `json:"enabled,omitempty"`
}

func (a *API) ListModels(ctx context.Context, providerID string) ([]LLMModel, error) {
	return getData[[]LLMModel](ctx, a.client, fmt.Sprintf("/providers/%s/models", providerID))
}

func (a *API) GetModel(ctx context.Context, modelID string) (LLMModel, error) {
	return getData[LLMModel](ctx, a.client, "/models/"+modelID)
}

func (a *API) CreateModel(ctx context.Context, providerID string, params ModelParams) (LLMModel, error) {
	return postData[LLMModel](ctx, a.client, fmt.Sprintf("/providers/%s/models", providerID), params)
}

func (a *API) UpdateModel(ctx context.Context, modelID string, params ModelParams) (LLMModel, error) {
	return putData[LLMModel](ctx, a.client, "/models/"+modelID, params)
}

func (a *API) DeleteModel(ctx context.Context, modelID string) error {
	return a.client.Delete(ctx, "/models/"+modelID)
}
