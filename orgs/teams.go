package orgs

import (
	"context"
	"fmt"
)

type TeamParams struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

func (a *API) ListTeams(ctx context.Context, organizationID string) ([]Team, error) {
	return getData[[]Team](ctx, a.client, fmt.Sprintf("/organizations/%s/teams", organizationID))
}

func (a *API) GetTeam(ctx context.Context, teamID string) (Team, error) {
	return getData[Team](ctx, a.client, "/teams/"+teamID)
}

func (a *API) CreateTeam(ctx context.Context, organizationID string, params TeamParams) (Team, error) {
	return postData[Team](ctx, a.client, fmt.Sprintf("/organizations/%s/teams", organizationID), params)
}

func (a *API) UpdateTeam(ctx context.Context, teamID string, params TeamParams) (Team, error) {
	return putData[Team](ctx, a.client, "/teams/"+teamID, params)
}

func (a *API) DeleteTeam(ctx context.Context, teamID string) error {
	return a.client.Delete(ctx, "/teams/"+teamID)
}

func (a *API) ListTeamMembers(ctx context.Context, teamID string) ([]TeamMember, error) {
	return getData[[]TeamMember](ctx, a.client, fmt.Sprintf("/teams/%s/members", teamID))
}

// AddTeamMember defaults role to "member" when empty.
func (a *API) AddTeamMember(ctx context.Context, teamID, userID, role string) (TeamMember, error) {
	if role == "" {
		role = "member"
	}
	body := map[string]string{"user_id": userID, "role": role}
	return postData[TeamMember](ctx, a.client, fmt.Sprintf("/teams/%s/members", teamID), body)
}

func (a *API) RemoveTeamMember(ctx context.Context, teamID, memberID string) error {
	return a.client.Delete(ctx, fmt.Sprintf("/teams/%s/members/%s", teamID, memberID))
}
