package platform

import (
	"context"
	"net/http"
	"strconv"

	"aeobro.backend/internal/domain/entities"
)

// GitHubProvider resolves identities via the GitHub REST API
type GitHubProvider struct {
	client  *http.Client
	baseURL string
}

// NewGitHubProvider creates a GitHub provider
func NewGitHubProvider(client *http.Client) *GitHubProvider {
	return &GitHubProvider{
		client:  client,
		baseURL: "https://api.github.com",
	}
}

func (p *GitHubProvider) Name() string { return "github" }

type githubUserResponse struct {
	ID      int64  `json:"id"`
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// ResolveIdentity resolves the authenticated GitHub user
func (p *GitHubProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body githubUserResponse
	if err := getJSON(ctx, p.client, p.Name(), p.baseURL+"/user", accessToken, &body); err != nil {
		return nil, err
	}

	if body.ID == 0 {
		return nil, &ProviderError{Provider: p.Name(), Reason: "response missing user id"}
	}

	return &entities.PlatformIdentity{
		ExternalID: strconv.FormatInt(body.ID, 10),
		Handle:     body.Login,
		URL:        body.HTMLURL,
	}, nil
}
