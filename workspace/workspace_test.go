package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
)

// backend is a scriptable slice of the resource API.
type backend struct {
	mux *http.ServeMux

	failTeams     bool
	teamListCalls int32
	nextTeamID    int32

	// siblingDelay stalls the members and providers handlers, so a teams
	// failure cancels those requests while they are still in flight.
	siblingDelay time.Duration
}

func writeData(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func newBackend() *backend {
	b := &backend{mux: http.NewServeMux()}

	b.mux.HandleFunc("GET /organizations", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []orgs.Organization{
			{ID: "o1", Name: "Org o1", Slug: "org-o1"},
			{ID: "o2", Name: "Org o2", Slug: "org-o2"},
		})
	})
	b.mux.HandleFunc("GET /organizations/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Organization not found"}`))
			return
		}
		writeData(w, orgs.Organization{ID: id, Name: "Org " + id, Slug: "org-" + id})
	})
	b.mux.HandleFunc("PUT /organizations/{id}", func(w http.ResponseWriter, r *http.Request) {
		var params orgs.OrganizationParams
		_ = json.NewDecoder(r.Body).Decode(&params)
		writeData(w, orgs.Organization{ID: r.PathValue("id"), Name: params.Name, Slug: "org-" + r.PathValue("id")})
	})
	b.mux.HandleFunc("GET /organizations/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.teamListCalls, 1)
		if b.failTeams {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail": "teams unavailable"}`))
			return
		}
		writeData(w, []orgs.Team{{ID: "t1", OrganizationID: r.PathValue("id"), Name: "core"}})
	})
	b.mux.HandleFunc("POST /organizations/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
		var params orgs.TeamParams
		_ = json.NewDecoder(r.Body).Decode(&params)
		n := atomic.AddInt32(&b.nextTeamID, 1)
		writeData(w, orgs.Team{ID: fmt.Sprintf("new-%d", n), OrganizationID: r.PathValue("id"), Name: params.Name})
	})
	b.mux.HandleFunc("PUT /teams/{id}", func(w http.ResponseWriter, r *http.Request) {
		var params orgs.TeamParams
		_ = json.NewDecoder(r.Body).Decode(&params)
		writeData(w, orgs.Team{ID: r.PathValue("id"), Name: params.Name})
	})
	b.mux.HandleFunc("DELETE /teams/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})
	b.mux.HandleFunc("GET /organizations/{id}/members", func(w http.ResponseWriter, r *http.Request) {
		if d := b.siblingDelay; d > 0 {
			time.Sleep(d)
		}
		writeData(w, []orgs.OrganizationMember{{ID: "m1", OrganizationID: r.PathValue("id"), UserID: "u1", Role: "owner"}})
	})
	b.mux.HandleFunc("GET /organizations/{id}/providers", func(w http.ResponseWriter, r *http.Request) {
		if d := b.siblingDelay; d > 0 {
			time.Sleep(d)
		}
		writeData(w, []orgs.LLMProvider{{ID: "p1", OrganizationID: r.PathValue("id"), Name: "openai", Kind: "openai", Enabled: true}})
	})

	return b
}

func newManager(t *testing.T, b *backend) *Manager {
	t.Helper()
	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)
	c, err := rest.New(rest.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return New(orgs.New(c), nil)
}

func TestSetCurrentOrganization_LoadsAllThreeCollections(t *testing.T) {
	m := newManager(t, newBackend())

	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))

	s := m.State()
	require.NotNil(t, s.Current)
	require.Equal(t, "o1", s.Current.ID)
	require.Len(t, s.Teams, 1)
	require.Len(t, s.Members, 1)
	require.Len(t, s.Providers, 1)
	require.False(t, s.IsLoading)
	require.Empty(t, s.Err)
}

func TestSetCurrentOrganization_FetchFailureSkipsLoads(t *testing.T) {
	b := newBackend()
	m := newManager(t, b)

	// Establish a selection first.
	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))

	err := m.SetCurrentOrganization(context.Background(), "missing")
	require.Error(t, err)

	s := m.State()
	require.Equal(t, "o1", s.Current.ID, "selection must be untouched")
	require.Equal(t, "Organization not found", s.Err)
	// One team-list call from the first selection only.
	require.EqualValues(t, 1, atomic.LoadInt32(&b.teamListCalls))
}

func TestSetCurrentOrganization_CollectionFailureIsNotSilent(t *testing.T) {
	b := newBackend()
	m := newManager(t, b)

	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))
	require.Len(t, m.State().Teams, 1)

	b.failTeams = true
	err := m.SetCurrentOrganization(context.Background(), "o2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "teams unavailable")

	s := m.State()
	// The fetch succeeded, so the selection moved...
	require.Equal(t, "o2", s.Current.ID)
	// ...but the previous organization's teams must not masquerade as o2's.
	require.Empty(t, s.Teams)
	require.Equal(t, "teams unavailable", s.Err)
}

func TestSetCurrentOrganization_CanceledSiblingsDoNotMaskTheFailure(t *testing.T) {
	b := newBackend()
	b.failTeams = true
	b.siblingDelay = 300 * time.Millisecond
	m := newManager(t, b)

	// The teams load fails immediately; the members and providers requests
	// are still in flight when the group cancels them, and their
	// cancellation errors land after the teams error.
	err := m.SetCurrentOrganization(context.Background(), "o1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "teams unavailable")

	s := m.State()
	require.Equal(t, "teams unavailable", s.Err, "Err must mirror the failure that aborted the load")
	require.False(t, s.IsLoading)
}

func TestCreateThenDeleteTeam_RoundTripsCollection(t *testing.T) {
	m := newManager(t, newBackend())
	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))
	before := m.State().Teams

	team, err := m.CreateTeam(context.Background(), "o1", orgs.TeamParams{Name: "ephemeral"})
	require.NoError(t, err)
	require.Len(t, m.State().Teams, len(before)+1)

	require.NoError(t, m.DeleteTeam(context.Background(), team.ID))

	after := m.State().Teams
	require.Equal(t, len(before), len(after))
	for i := range before {
		require.Equal(t, before[i].ID, after[i].ID, "order must survive the round trip")
	}
}

func TestUpdateOrganization_RefreshesCurrentOnlyOnMatch(t *testing.T) {
	m := newManager(t, newBackend())
	require.NoError(t, m.LoadOrganizations(context.Background()))
	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))

	require.NoError(t, m.UpdateOrganization(context.Background(), "o1", orgs.OrganizationParams{Name: "Renamed"}))
	s := m.State()
	require.Equal(t, "Renamed", s.Current.Name)
	require.Equal(t, "Renamed", s.Organizations[0].Name)
	require.Equal(t, "Org o2", s.Organizations[1].Name)

	require.NoError(t, m.UpdateOrganization(context.Background(), "o2", orgs.OrganizationParams{Name: "Other"}))
	s = m.State()
	require.Equal(t, "Renamed", s.Current.Name, "current untouched when ids differ")
	require.Equal(t, "Other", s.Organizations[1].Name)
	require.Equal(t, "o1", s.Organizations[0].ID, "order preserved")
}

func TestMutationFailure_LeavesCollectionUntouched(t *testing.T) {
	b := newBackend()
	b.mux.HandleFunc("POST /organizations/{id}/providers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "quota exceeded"}`))
	})
	m := newManager(t, b)
	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))
	before := m.State().Providers

	_, err := m.CreateProvider(context.Background(), "o1", orgs.ProviderParams{Name: "anthropic"})
	require.Error(t, err)

	s := m.State()
	require.Equal(t, before, s.Providers, "no optimistic insertion")
	require.Equal(t, "quota exceeded", s.Err)
	require.False(t, s.IsLoading)
}

func TestDerivedViews_MirrorCanonicalState(t *testing.T) {
	m := newManager(t, newBackend())
	current := m.CurrentOrganization()
	require.Nil(t, current.Get())

	require.NoError(t, m.SetCurrentOrganization(context.Background(), "o1"))
	require.Equal(t, "o1", current.Get().ID)
	require.Len(t, m.Teams().Get(), 1)
}
