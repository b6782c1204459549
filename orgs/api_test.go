package orgs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/llm-dev-ops/governance-go/rest"
)

func newTestAPI(t *testing.T, handler http.Handler) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := rest.New(rest.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}
	return New(c)
}

func TestListOrganizations_DoubleUnwrap(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations" {
			t.Errorf("path = %s", r.URL.Path)
		}
		// list payload nested inside the domain envelope
		_, _ = w.Write([]byte(`{"data": [{"id": "o1", "name": "Acme"}, {"id": "o2", "name": "Globex"}]}`))
	}))

	got, err := api.ListOrganizations(context.Background())
	if err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o1" || got[1].Name != "Globex" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetOrganization_DoubleUnwrap(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": "o1", "name": "Acme", "slug": "acme"}}`))
	}))

	org, err := api.GetOrganization(context.Background(), "o1")
	if err != nil {
		t.Fatalf("GetOrganization: %v", err)
	}
	if org.ID != "o1" || org.Slug != "acme" {
		t.Fatalf("org = %+v", org)
	}
}

func TestCreateTeam_RouteAndBody(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/organizations/o1/teams" {
			t.Errorf("unexpected route %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "platform" {
			t.Errorf("body = %v", body)
		}
		_, _ = w.Write([]byte(`{"data": {"id": "t1", "organization_id": "o1", "name": "platform"}}`))
	}))

	team, err := api.CreateTeam(context.Background(), "o1", TeamParams{Name: "platform"})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.ID != "t1" || team.OrganizationID != "o1" {
		t.Fatalf("team = %+v", team)
	}
}

func TestAddTeamMember_DefaultsRole(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["role"] != "member" || body["user_id"] != "u1" {
			t.Errorf("body = %v", body)
		}
		_, _ = w.Write([]byte(`{"data": {"id": "tm1", "team_id": "t1", "user_id": "u1", "role": "member"}}`))
	}))

	tm, err := api.AddTeamMember(context.Background(), "t1", "u1", "")
	if err != nil {
		t.Fatalf("AddTeamMember: %v", err)
	}
	if tm.Role != "member" {
		t.Fatalf("role = %q", tm.Role)
	}
}

func TestEveryMethod_NormalizesAPIError(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "not found"}`))
	}))

	ctx := context.Background()
	calls := []func() error{
		func() error { _, err := api.ListOrganizations(ctx); return err },
		func() error { _, err := api.GetOrganization(ctx, "x"); return err },
		func() error { _, err := api.UpdateOrganization(ctx, "x", OrganizationParams{}); return err },
		func() error { return api.DeleteOrganization(ctx, "x") },
		func() error { _, err := api.ListTeams(ctx, "x"); return err },
		func() error { _, err := api.ListProviders(ctx, "x"); return err },
		func() error { _, err := api.ListModels(ctx, "x"); return err },
		func() error { _, err := api.GetModel(ctx, "x"); return err },
	}
	for i, call := range calls {
		ae, ok := rest.AsError(call())
		if !ok {
			t.Fatalf("call %d: expected *rest.Error", i)
		}
		if ae.StatusCode != http.StatusNotFound || ae.Detail != "not found" {
			t.Fatalf("call %d: error = %+v", i, ae)
		}
	}
}

func TestEveryMethod_NetworkErrorSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c, err := rest.New(rest.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}
	api := New(c)

	_, err = api.ListProviders(context.Background(), "o1")
	ae, ok := rest.AsError(err)
	if !ok {
		t.Fatalf("expected *rest.Error, got %v", err)
	}
	if ae.StatusCode != 0 || ae.Detail != rest.NetworkErrorDetail {
		t.Fatalf("error = %+v", ae)
	}
}
