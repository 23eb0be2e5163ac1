package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
)

const defaultHTTPTimeout = 10 * time.Second

// Provider resolves a canonical external identity from an OAuth access
// token. Each supported platform implements the same contract so the
// verification flow treats them uniformly; adding a platform means
// registering one more implementation, not growing a conditional.
type Provider interface {
	Name() string
	ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error)
}

// ProviderError is a structured upstream rejection: the token was bad,
// a scope was missing, or the account lacks the needed sub-resource.
// These indicate genuine mismatch, not propagation delay, and are not
// retried.
type ProviderError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

func (e *ProviderError) Unwrap() error {
	return domainerrors.ErrUpstreamFailure
}

// Registry holds the known providers keyed by name
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a registry with the given providers
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// DefaultRegistry wires every supported provider against its real API
func DefaultRegistry() *Registry {
	client := &http.Client{Timeout: defaultHTTPTimeout}
	return NewRegistry(
		NewGoogleProvider(client),
		NewGitHubProvider(client),
		NewFacebookProvider(client),
		NewInstagramProvider(client),
		NewXProvider(client),
		NewTikTokProvider(client),
		NewLinkedInProvider(client),
	)
}

// Get returns the provider for name
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider
	}
	return p, nil
}

// ResolveIdentity dispatches to the named provider
func (r *Registry) ResolveIdentity(ctx context.Context, name, accessToken string) (*entities.PlatformIdentity, error) {
	p, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return p.ResolveIdentity(ctx, accessToken)
}

// Names lists the registered provider names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getJSON performs a bearer-authenticated GET and decodes the body.
// Non-2xx statuses come back as a ProviderError.
func getJSON(ctx context.Context, client *http.Client, provider, url, accessToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return &ProviderError{Provider: provider, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &ProviderError{Provider: provider, Reason: fmt.Sprintf("token rejected (status %d)", resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{Provider: provider, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Provider: provider, Reason: "malformed response", Err: err}
	}
	return nil
}
