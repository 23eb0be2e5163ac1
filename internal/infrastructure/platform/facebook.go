package platform

import (
	"context"
	"net/http"

	"aeobro.backend/internal/domain/entities"
)

// FacebookProvider resolves identities via the Facebook Graph API
type FacebookProvider struct {
	client  *http.Client
	baseURL string
}

// NewFacebookProvider creates a Facebook provider
func NewFacebookProvider(client *http.Client) *FacebookProvider {
	return &FacebookProvider{
		client:  client,
		baseURL: "https://graph.facebook.com",
	}
}

func (p *FacebookProvider) Name() string { return "facebook" }

type facebookMeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// ResolveIdentity resolves the authenticated Facebook user
func (p *FacebookProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body facebookMeResponse
	url := p.baseURL + "/v19.0/me?fields=id,name,link"
	if err := getJSON(ctx, p.client, p.Name(), url, accessToken, &body); err != nil {
		return nil, err
	}

	if body.ID == "" {
		return nil, &ProviderError{Provider: p.Name(), Reason: "response missing user id"}
	}

	link := body.Link
	if link == "" {
		link = "https://www.facebook.com/" + body.ID
	}

	return &entities.PlatformIdentity{
		ExternalID: body.ID,
		Handle:     body.Name,
		URL:        link,
	}, nil
}
