package governance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/llm-dev-ops/governance-go/auth"
	"github.com/llm-dev-ops/governance-go/rest"
)

func loginCreds() auth.Credentials {
	return auth.Credentials{Email: "a@b.c", Password: "pw"}
}

func TestSDK_ModulesShareOneClient(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/auth/login":
			_, _ = w.Write([]byte(`{"access_token": "tok", "token_type": "bearer"}`))
		case "/organizations":
			_, _ = w.Write([]byte(`{"data": [{"id": "o1", "name": "Acme"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	var observed []string
	sdk, err := New(
		rest.WithBaseURL(srv.URL),
		rest.WithTokenChange(func(tok string) { observed = append(observed, tok) }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := sdk.Auth.Login(context.Background(), loginCreds()); err != nil {
		t.Fatalf("Login: %v", err)
	}
	// The token set by the auth module must be visible to the orgs module.
	organizations, err := sdk.Organizations.ListOrganizations(context.Background())
	if err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
	if len(organizations) != 1 || organizations[0].ID != "o1" {
		t.Fatalf("organizations = %+v", organizations)
	}

	if gotAuth[1] != "Bearer tok" {
		t.Fatalf("orgs request Authorization = %q", gotAuth[1])
	}
	if len(observed) != 1 || observed[0] != "tok" {
		t.Fatalf("token callback observations = %v", observed)
	}
	if sdk.Token() != "tok" {
		t.Fatalf("Token() = %q", sdk.Token())
	}
}
