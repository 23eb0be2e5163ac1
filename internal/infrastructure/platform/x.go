package platform

import (
	"context"
	"net/http"

	"aeobro.backend/internal/domain/entities"
)

// XProvider resolves identities via the X (Twitter) API v2
type XProvider struct {
	client  *http.Client
	baseURL string
}

// NewXProvider creates an X provider
func NewXProvider(client *http.Client) *XProvider {
	return &XProvider{
		client:  client,
		baseURL: "https://api.x.com",
	}
}

func (p *XProvider) Name() string { return "x" }

type xMeResponse struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

// ResolveIdentity resolves the authenticated X user
func (p *XProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body xMeResponse
	if err := getJSON(ctx, p.client, p.Name(), p.baseURL+"/2/users/me", accessToken, &body); err != nil {
		return nil, err
	}

	if body.Data.ID == "" {
		return nil, &ProviderError{Provider: p.Name(), Reason: "response missing user id"}
	}

	return &entities.PlatformIdentity{
		ExternalID: body.Data.ID,
		Handle:     body.Data.Username,
		URL:        "https://x.com/" + body.Data.Username,
	}, nil
}
