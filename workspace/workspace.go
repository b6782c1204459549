// Package workspace coordinates the organization-scoped resource API into a
// single observable workspace: the organization list, the selected
// organization, and its teams, members and providers.
//
// Collections mirror the server: a record appears after a create call
// succeeds, is replaced when an update echoes the canonical record, and
// disappears after the server confirms deletion. Nothing is changed
// optimistically, and reconciliation never reorders surviving records.
package workspace

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
	"github.com/llm-dev-ops/governance-go/store"
)

// State is the observable workspace record. Teams, Members and Providers
// are scoped to Current; selecting another organization replaces all three.
type State struct {
	Organizations []orgs.Organization
	Current       *orgs.Organization
	Teams         []orgs.Team
	Members       []orgs.OrganizationMember
	Providers     []orgs.LLMProvider
	IsLoading     bool
	Err           string
}

type Manager struct {
	api    *orgs.API
	state  *store.Store[State]
	logger *slog.Logger
}

func New(api *orgs.API, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		api:    api,
		state:  store.New(State{}),
		logger: logger,
	}
}

// State returns the current workspace snapshot.
func (m *Manager) State() State { return m.state.Get() }

// Subscribe observes workspace changes; see store.Store.Subscribe.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	return m.state.Subscribe(fn)
}

// Derived views over the canonical state.

func (m *Manager) CurrentOrganization() *store.View[State, *orgs.Organization] {
	return store.Derive(m.state, func(s State) *orgs.Organization { return s.Current })
}

func (m *Manager) Organizations() *store.View[State, []orgs.Organization] {
	return store.Derive(m.state, func(s State) []orgs.Organization { return s.Organizations })
}

func (m *Manager) Teams() *store.View[State, []orgs.Team] {
	return store.Derive(m.state, func(s State) []orgs.Team { return s.Teams })
}

func (m *Manager) Providers() *store.View[State, []orgs.LLMProvider] {
	return store.Derive(m.state, func(s State) []orgs.LLMProvider { return s.Providers })
}

// LoadOrganizations replaces the organization list.
func (m *Manager) LoadOrganizations(ctx context.Context) error {
	m.begin()
	defer m.endLoading()

	organizations, err := m.api.ListOrganizations(ctx)
	if err != nil {
		m.fail(err, "Failed to load organizations")
		return err
	}
	m.state.Update(func(s State) State {
		s.Organizations = organizations
		s.Err = ""
		return s
	})
	return nil
}

// SetCurrentOrganization selects an organization and loads its teams,
// members and providers concurrently, resolving only when all three have
// completed. A failed organization fetch leaves the selection untouched and
// skips the loads. A failed collection load aborts the whole operation: the
// workspace is never silently left partially populated. The three
// collections are cleared when the selection changes, so a failure shows an
// empty collection plus the error, never a stale one.
func (m *Manager) SetCurrentOrganization(ctx context.Context, id string) error {
	m.begin()
	defer m.endLoading()

	org, err := m.api.GetOrganization(ctx, id)
	if err != nil {
		m.fail(err, "Failed to load organization")
		return err
	}
	m.state.Update(func(s State) State {
		s.Current = &org
		s.Teams = nil
		s.Members = nil
		s.Providers = nil
		s.Err = ""
		return s
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.LoadTeams(gctx, id) })
	g.Go(func() error { return m.LoadMembers(gctx, id) })
	g.Go(func() error { return m.LoadProviders(gctx, id) })
	if err := g.Wait(); err != nil {
		// Wait returns the load failure that aborted the composite; siblings
		// canceled on its behalf have already declined to touch Err, so this
		// mirrors the causative failure even when a canceled sibling finished
		// after the one that failed.
		m.fail(err, "Failed to load organization")
		return err
	}
	return nil
}

// CreateOrganization appends the server-assigned record to the list.
func (m *Manager) CreateOrganization(ctx context.Context, params orgs.OrganizationParams) (orgs.Organization, error) {
	m.begin()
	defer m.endLoading()

	org, err := m.api.CreateOrganization(ctx, params)
	if err != nil {
		m.fail(err, "Failed to create organization")
		return orgs.Organization{}, err
	}
	m.state.Update(func(s State) State {
		s.Organizations = append(s.Organizations, org)
		s.Err = ""
		return s
	})
	return org, nil
}

// UpdateOrganization replaces the matching list entry with the server's
// canonical record, preserving order, and refreshes Current when it is the
// updated organization.
func (m *Manager) UpdateOrganization(ctx context.Context, id string, params orgs.OrganizationParams) error {
	m.begin()
	defer m.endLoading()

	updated, err := m.api.UpdateOrganization(ctx, id, params)
	if err != nil {
		m.fail(err, "Failed to update organization")
		return err
	}
	m.state.Update(func(s State) State {
		s.Organizations = replaceByID(s.Organizations, id, updated, func(o orgs.Organization) string { return o.ID })
		if s.Current != nil && s.Current.ID == id {
			s.Current = &updated
		}
		s.Err = ""
		return s
	})
	return nil
}

// DeleteOrganization removes the record and clears the selection when the
// deleted organization was current.
func (m *Manager) DeleteOrganization(ctx context.Context, id string) error {
	m.begin()
	defer m.endLoading()

	if err := m.api.DeleteOrganization(ctx, id); err != nil {
		m.fail(err, "Failed to delete organization")
		return err
	}
	m.state.Update(func(s State) State {
		s.Organizations = removeByID(s.Organizations, id, func(o orgs.Organization) string { return o.ID })
		if s.Current != nil && s.Current.ID == id {
			s.Current = nil
		}
		s.Err = ""
		return s
	})
	return nil
}

// LoadTeams replaces the teams collection for the given organization.
func (m *Manager) LoadTeams(ctx context.Context, organizationID string) error {
	teams, err := m.api.ListTeams(ctx, organizationID)
	if err != nil {
		if ctx.Err() == nil {
			m.fail(err, "Failed to load teams")
		}
		return err
	}
	m.state.Update(func(s State) State {
		s.Teams = teams
		return s
	})
	return nil
}

func (m *Manager) CreateTeam(ctx context.Context, organizationID string, params orgs.TeamParams) (orgs.Team, error) {
	m.begin()
	defer m.endLoading()

	team, err := m.api.CreateTeam(ctx, organizationID, params)
	if err != nil {
		m.fail(err, "Failed to create team")
		return orgs.Team{}, err
	}
	m.state.Update(func(s State) State {
		s.Teams = append(s.Teams, team)
		s.Err = ""
		return s
	})
	return team, nil
}

func (m *Manager) UpdateTeam(ctx context.Context, teamID string, params orgs.TeamParams) error {
	m.begin()
	defer m.endLoading()

	updated, err := m.api.UpdateTeam(ctx, teamID, params)
	if err != nil {
		m.fail(err, "Failed to update team")
		return err
	}
	m.state.Update(func(s State) State {
		s.Teams = replaceByID(s.Teams, teamID, updated, func(t orgs.Team) string { return t.ID })
		s.Err = ""
		return s
	})
	return nil
}

func (m *Manager) DeleteTeam(ctx context.Context, teamID string) error {
	m.begin()
	defer m.endLoading()

	if err := m.api.DeleteTeam(ctx, teamID); err != nil {
		m.fail(err, "Failed to delete team")
		return err
	}
	m.state.Update(func(s State) State {
		s.Teams = removeByID(s.Teams, teamID, func(t orgs.Team) string { return t.ID })
		s.Err = ""
		return s
	})
	return nil
}

// LoadMembers replaces the members collection for the given organization.
func (m *Manager) LoadMembers(ctx context.Context, organizationID string) error {
	members, err := m.api.ListOrganizationMembers(ctx, organizationID)
	if err != nil {
		if ctx.Err() == nil {
			m.fail(err, "Failed to load members")
		}
		return err
	}
	m.state.Update(func(s State) State {
		s.Members = members
		return s
	})
	return nil
}

func (m *Manager) AddMember(ctx context.Context, organizationID, userID, role string) error {
	m.begin()
	defer m.endLoading()

	member, err := m.api.AddOrganizationMember(ctx, organizationID, userID, role)
	if err != nil {
		m.fail(err, "Failed to add member")
		return err
	}
	m.state.Update(func(s State) State {
		s.Members = append(s.Members, member)
		s.Err = ""
		return s
	})
	return nil
}

func (m *Manager) UpdateMember(ctx context.Context, organizationID, memberID, role string) error {
	m.begin()
	defer m.endLoading()

	updated, err := m.api.UpdateOrganizationMember(ctx, organizationID, memberID, role)
	if err != nil {
		m.fail(err, "Failed to update member")
		return err
	}
	m.state.Update(func(s State) State {
		s.Members = replaceByID(s.Members, memberID, updated, func(mm orgs.OrganizationMember) string { return mm.ID })
		s.Err = ""
		return s
	})
	return nil
}

func (m *Manager) RemoveMember(ctx context.Context, organizationID, memberID string) error {
	m.begin()
	defer m.endLoading()

	if err := m.api.RemoveOrganizationMember(ctx, organizationID, memberID); err != nil {
		m.fail(err, "Failed to remove member")
		return err
	}
	m.state.Update(func(s State) State {
		s.Members = removeByID(s.Members, memberID, func(mm orgs.OrganizationMember) string { return mm.ID })
		s.Err = ""
		return s
	})
	return nil
}

// LoadProviders replaces the providers collection for the given organization.
func (m *Manager) LoadProviders(ctx context.Context, organizationID string) error {
	providers, err := m.api.ListProviders(ctx, organizationID)
	if err != nil {
		if ctx.Err() == nil {
			m.fail(err, "Failed to load providers")
		}
		return err
	}
	m.state.Update(func(s State) State {
		s.Providers = providers
		return s
	})
	return nil
}

func (m *Manager) CreateProvider(ctx context.Context, organizationID string, params orgs.ProviderParams) (orgs.LLMProvider, error) {
	m.begin()
	defer m.endLoading()

	provider, err := m.api.CreateProvider(ctx, organizationID, params)
	if err != nil {
		m.fail(err, "Failed to create provider")
		return orgs.LLMProvider{}, err
	}
	m.state.Update(func(s State) State {
		s.Providers = append(s.Providers, provider)
		s.Err = ""
		return s
	})
	return provider, nil
}

func (m *Manager) UpdateProvider(ctx context.Context, providerID string, params orgs.ProviderParams) error {
	m.begin()
	defer m.endLoading()

	updated, err := m.api.UpdateProvider(ctx, providerID, params)
	if err != nil {
		m.fail(err, "Failed to update provider")
		return err
	}
	m.state.Update(func(s State) State {
		s.Providers = replaceByID(s.Providers, providerID, updated, func(p orgs.LLMProvider) string { return p.ID })
		s.Err = ""
		return s
	})
	return nil
}

func (m *Manager) DeleteProvider(ctx context.Context, providerID string) error {
	m.begin()
	defer m.endLoading()

	if err := m.api.DeleteProvider(ctx, providerID); err != nil {
		m.fail(err, "Failed to delete provider")
		return err
	}
	m.state.Update(func(s State) State {
		s.Providers = removeByID(s.Providers, providerID, func(p orgs.LLMProvider) string { return p.ID })
		s.Err = ""
		return s
	})
	return nil
}

// ClearError clears the last failure message.
func (m *Manager) ClearError() {
	m.state.Update(func(s State) State {
		s.Err = ""
		return s
	})
}

func (m *Manager) begin() {
	m.state.Update(func(s State) State {
		s.IsLoading = true
		s.Err = ""
		return s
	})
}

func (m *Manager) endLoading() {
	m.state.Update(func(s State) State {
		s.IsLoading = false
		return s
	})
}

func (m *Manager) fail(err error, fallback string) {
	msg := rest.Message(err, fallback)
	m.state.Update(func(s State) State {
		s.Err = msg
		return s
	})
}
