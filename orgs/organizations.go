package orgs

import (
	"context"
	"fmt"
)

// OrganizationParams carries the writable fields for create/update. Zero
// fields are omitted from the request body.
type OrganizationParams struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

func (a *API) ListOrganizations(ctx context.Context) ([]Organization, error) {
	return getData[[]Organization](ctx, a.client, "/organizations")
}

func (a *API) GetOrganization(ctx context.Context, id string) (Organization, error) {
	return getData[Organization](ctx, a.client, "/organizations/"+id)
}

func (a *API) CreateOrganization(ctx context.Context, params OrganizationParams) (Organization, error) {
	return postData[Organization](ctx, a.client, "/organizations", params)
}

func (a *API) UpdateOrganization(ctx context.Context, id string, params OrganizationParams) (Organization, error) {
	return putData[Organization](ctx, a.client, "/organizations/"+id, params)
}

func (a *API) DeleteOrganization(ctx context.Context, id string) error {
	return a.client.Delete(ctx, "/organizations/"+id)
}

func (a *API) ListOrganizationMembers(ctx context.Context, organizationID string) ([]OrganizationMember, error) {
	return getData[[]OrganizationMember](ctx, a.client, fmt.Sprintf("/organizations/%s/members", organizationID))
}

func (a *API) AddOrganizationMember(ctx context.Context, organizationID, userID, role string) (OrganizationMember, error) {
	body := map[string]string{"user_id": userID, "role": role}
	return postData[OrganizationMember](ctx, a.client, fmt.Sprintf("/organizations/%s/members", organizationID), body)
}

func (a *API) UpdateOrganizationMember(ctx context.Context, organizationID, memberID, role string) (OrganizationMember, error) {
	body := map[string]string{"role": role}
	return putData[OrganizationMember](ctx, a.client, fmt.Sprintf("/organizations/%s/members/%s", organizationID, memberID), body)
}

func (a *API) RemoveOrganizationMember(ctx context.Context, organizationID, memberID string) error {
	return a.client.Delete(ctx, fmt.Sprintf("/organizations/%s/members/%s", organizationID, memberID))
}
