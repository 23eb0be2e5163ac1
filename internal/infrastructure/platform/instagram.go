package platform

import (
	"context"
	"net/http"

	"aeobro.backend/internal/domain/entities"
)

// InstagramProvider resolves identities via the Instagram Graph API
type InstagramProvider struct {
	client  *http.Client
	baseURL string
}

// NewInstagramProvider creates an Instagram provider
func NewInstagramProvider(client *http.Client) *InstagramProvider {
	return &InstagramProvider{
		client:  client,
		baseURL: "https://graph.instagram.com",
	}
}

func (p *InstagramProvider) Name() string { return "instagram" }

type instagramMeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ResolveIdentity resolves the authenticated Instagram user
func (p *InstagramProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body instagramMeResponse
	url := p.baseURL + "/me?fields=id,username"
	if err := getJSON(ctx, p.client, p.Name(), url, accessToken, &body); err != nil {
		return nil, err
	}

	if body.ID == "" {
		return nil, &ProviderError{Provider: p.Name(), Reason: "response missing user id"}
	}

	return &entities.PlatformIdentity{
		ExternalID: body.ID,
		Handle:     body.Username,
		URL:        "https://www.instagram.com/" + body.Username,
	}, nil
}
