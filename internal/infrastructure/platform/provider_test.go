package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	domainerrors "aeobro.backend/internal/domain/errors"
)

func TestRegistry_GetAndNames(t *testing.T) {
	registry := DefaultRegistry()

	require.Equal(t, []string{"facebook", "github", "google", "instagram", "linkedin", "tiktok", "x"}, registry.Names())

	p, err := registry.Get("github")
	require.NoError(t, err)
	require.Equal(t, "github", p.Name())

	_, err = registry.Get("myspace")
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestRegistry_ResolveIdentityUnknownProvider(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.ResolveIdentity(context.Background(), "myspace", "token")
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestGitHubProvider_ResolveIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		require.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":583231,"login":"octocat","html_url":"https://github.com/octocat"}`))
	}))
	defer server.Close()

	provider := NewGitHubProvider(server.Client())
	provider.baseURL = server.URL

	identity, err := provider.ResolveIdentity(context.Background(), "gh-token")
	require.NoError(t, err)
	require.Equal(t, "583231", identity.ExternalID)
	require.Equal(t, "octocat", identity.Handle)
	require.Equal(t, "https://github.com/octocat", identity.URL)
}

func TestGitHubProvider_TokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewGitHubProvider(server.Client())
	provider.baseURL = server.URL

	_, err := provider.ResolveIdentity(context.Background(), "bad-token")
	require.Error(t, err)

	// Provider rejections surface as upstream failures, never soft results.
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, "github", provErr.Provider)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}

func TestGitHubProvider_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	provider := NewGitHubProvider(server.Client())
	provider.baseURL = server.URL

	_, err := provider.ResolveIdentity(context.Background(), "gh-token")
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestInstagramProvider_ResolveIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		require.Equal(t, "id,username", r.URL.Query().Get("fields"))
		require.Equal(t, "Bearer ig-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"17841400000000000","username":"acme"}`))
	}))
	defer server.Close()

	provider := NewInstagramProvider(server.Client())
	provider.baseURL = server.URL

	identity, err := provider.ResolveIdentity(context.Background(), "ig-token")
	require.NoError(t, err)
	require.Equal(t, "17841400000000000", identity.ExternalID)
	require.Equal(t, "acme", identity.Handle)
	require.Equal(t, "https://www.instagram.com/acme", identity.URL)
}

func TestInstagramProvider_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	provider := NewInstagramProvider(server.Client())
	provider.baseURL = server.URL

	_, err := provider.ResolveIdentity(context.Background(), "ig-token")
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, "instagram", provErr.Provider)
}

func TestGetJSON_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": not-json`))
	}))
	defer server.Close()

	var out map[string]interface{}
	err := getJSON(context.Background(), server.Client(), "test", server.URL, "tok", &out)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, "malformed response", provErr.Reason)
}

func TestGetJSON_NetworkFault(t *testing.T) {
	client := &http.Client{Timeout: 50 * time.Millisecond}
	var out map[string]interface{}

	err := getJSON(context.Background(), client, "test", "http://127.0.0.1:1", "tok", &out)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}
