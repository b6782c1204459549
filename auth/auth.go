// Package auth wraps the transport core for the authentication routes.
//
// Login, Register, VerifyMFA and RefreshToken mutate client-wide auth state
// as a side effect: whenever the response carries an access token it is
// pushed into the rest client, which in turn notifies the embedding
// application through its token-change callback. Logout clears the token
// locally and performs no network call.
package auth

import (
	"context"
	"net/url"

	"github.com/llm-dev-ops/governance-go/rest"
)

// API exposes the /auth routes. It holds no state of its own.
type API struct {
	client *rest.Client
}

func New(client *rest.Client) *API {
	return &API{client: client}
}

// Login submits credentials as form-encoded username/password fields (the
// login endpoint is the one route that does not accept JSON) and stores the
// returned access token on the client.
func (a *API) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)

	var out AuthResponse
	if err := a.client.PostForm(ctx, "/auth/login", form, &out); err != nil {
		return AuthResponse{}, err
	}
	if out.AccessToken != "" {
		a.client.SetToken(out.AccessToken)
	}
	return out, nil
}

func (a *API) Register(ctx context.Context, data RegisterData) (AuthResponse, error) {
	res, err := rest.PostJSON[AuthResponse](ctx, a.client, "/auth/register", data)
	if err != nil {
		return AuthResponse{}, err
	}
	if res.Data.AccessToken != "" {
		a.client.SetToken(res.Data.AccessToken)
	}
	return res.Data, nil
}

// CurrentUser fetches the canonical profile for the held token.
func (a *API) CurrentUser(ctx context.Context) (User, error) {
	res, err := rest.GetJSON[User](ctx, a.client, "/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	return res.Data, nil
}

// Logout clears the held token. Server-side session invalidation, if any,
// is not the SDK's concern.
func (a *API) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return nil
}

func (a *API) RefreshToken(ctx context.Context) (AuthResponse, error) {
	res, err := rest.PostJSON[AuthResponse](ctx, a.client, "/auth/refresh", nil)
	if err != nil {
		return AuthResponse{}, err
	}
	if res.Data.AccessToken != "" {
		a.client.SetToken(res.Data.AccessToken)
	}
	return res.Data, nil
}

func (a *API) SetupMFA(ctx context.Context) (MFASetupResponse, error) {
	res, err := rest.PostJSON[MFASetupResponse](ctx, a.client, "/auth/mfa/setup", nil)
	if err != nil {
		return MFASetupResponse{}, err
	}
	return res.Data, nil
}

func (a *API) VerifyMFASetup(ctx context.Context, code string) (MFAVerifySetupResponse, error) {
	body := map[string]string{"code": code}
	res, err := rest.PostJSON[MFAVerifySetupResponse](ctx, a.client, "/auth/mfa/verify-setup", body)
	if err != nil {
		return MFAVerifySetupResponse{}, err
	}
	return res.Data, nil
}

func (a *API) VerifyMFA(ctx context.Context, req MFAVerifyRequest) (AuthResponse, error) {
	res, err := rest.PostJSON[AuthResponse](ctx, a.client, "/auth/mfa/verify", req)
	if err != nil {
		return AuthResponse{}, err
	}
	if res.Data.AccessToken != "" {
		a.client.SetToken(res.Data.AccessToken)
	}
	return res.Data, nil
}

func (a *API) RequestPasswordReset(ctx context.Context, email string) (MessageResponse, error) {
	body := map[string]string{"email": email}
	res, err := rest.PostJSON[MessageResponse](ctx, a.client, "/auth/password/request-reset", body)
	if err != nil {
		return MessageResponse{}, err
	}
	return res.Data, nil
}

func (a *API) ResetPassword(ctx context.Context, token, password string) (MessageResponse, error) {
	body := map[string]string{"token": token, "password": password}
	res, err := rest.PostJSON[MessageResponse](ctx, a.client, "/auth/password/reset", body)
	if err != nil {
		return MessageResponse{}, err
	}
	return res.Data, nil
}
