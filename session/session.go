// Package session coordinates the authentication API into one observable
// session: who is logged in, whether an operation is in flight, and the last
// failure message.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/llm-dev-ops/governance-go/auth"
	"github.com/llm-dev-ops/governance-go/rest"
	"github.com/llm-dev-ops/governance-go/store"
)

// State is the observable session record. IsAuthenticated is derived:
// it is true exactly when User is non-nil.
type State struct {
	User            *auth.User
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Manager owns the session state and the operations that move it between
// Anonymous, Authenticating and Authenticated.
type Manager struct {
	client *rest.Client
	api    *auth.API
	state  *store.Store[State]
	logger *slog.Logger
}

// New constructs a Manager. When the client already holds a token (restored
// from a prior session) the canonical profile is fetched once up front; a
// token that is already expired is cleared without the probe.
func New(ctx context.Context, client *rest.Client, api *auth.API, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		client: client,
		api:    api,
		state:  store.New(State{}),
		logger: logger,
	}

	if tok := client.Token(); tok != "" {
		if auth.Expired(tok, time.Now()) {
			logger.Info("restored token expired, clearing")
			client.SetToken("")
		} else if err := m.LoadUser(ctx); err != nil {
			logger.Warn("restored session invalid", "error", err)
		}
	}
	return m
}

// State returns the current session snapshot.
func (m *Manager) State() State { return m.state.Get() }

// Subscribe observes session changes; see store.Store.Subscribe.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	return m.state.Subscribe(fn)
}

// Login authenticates and then unconditionally fetches the canonical
// profile; user data embedded in the login response is never trusted. A
// token whose profile cannot be fetched is not an authenticated session:
// LoadUser failure forces a full logout.
func (m *Manager) Login(ctx context.Context, creds auth.Credentials) error {
	m.begin()
	defer m.endLoading()

	if _, err := m.api.Login(ctx, creds); err != nil {
		m.fail(err, "Login failed")
		return err
	}
	return m.loadUser(ctx)
}

// Register creates the account and brings the session up the same way Login
// does.
func (m *Manager) Register(ctx context.Context, data auth.RegisterData) error {
	m.begin()
	defer m.endLoading()

	if _, err := m.api.Register(ctx, data); err != nil {
		m.fail(err, "Registration failed")
		return err
	}
	return m.loadUser(ctx)
}

// LoadUser fetches the canonical profile for the held token. On failure the
// session is fully logged out rather than left half-authenticated.
func (m *Manager) LoadUser(ctx context.Context) error {
	m.begin()
	defer m.endLoading()
	return m.loadUser(ctx)
}

func (m *Manager) loadUser(ctx context.Context) error {
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		msg := rest.Message(err, "Failed to load user")
		_ = m.api.Logout(ctx)
		// The forced logout clears user and token but keeps the failure
		// visible.
		m.state.Update(func(s State) State {
			return State{IsLoading: s.IsLoading, Err: msg}
		})
		return err
	}
	m.state.Update(func(s State) State {
		s.User = &user
		s.IsAuthenticated = true
		s.Err = ""
		return s
	})
	return nil
}

// Logout clears the token and resets the session to Anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		m.logger.Warn("logout", "error", err)
	}
	m.state.Set(State{})
	return nil
}

func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	m.begin()
	defer m.endLoading()

	if _, err := m.api.RequestPasswordReset(ctx, email); err != nil {
		m.fail(err, "Failed to request reset")
		return err
	}
	return nil
}

func (m *Manager) ResetPassword(ctx context.Context, token, password string) error {
	m.begin()
	defer m.endLoading()

	if _, err := m.api.ResetPassword(ctx, token, password); err != nil {
		m.fail(err, "Failed to reset password")
		return err
	}
	return nil
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
