package platform

import (
	"context"
	"net/http"

	"aeobro.backend/internal/domain/entities"
)

// TikTokProvider resolves identities via the TikTok Open API
type TikTokProvider struct {
	client  *http.Client
	baseURL string
}

// NewTikTokProvider creates a TikTok provider
func NewTikTokProvider(client *http.Client) *TikTokProvider {
	return &TikTokProvider{
		client:  client,
		baseURL: "https://open.tiktokapis.com",
	}
}

func (p *TikTokProvider) Name() string { return "tiktok" }

type tiktokUserResponse struct {
	Data struct {
		User struct {
			OpenID      string `json:"open_id"`
			DisplayName string `json:"display_name"`
			ProfileLink string `json:"profile_deep_link"`
		} `json:"user"`
	} `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

// ResolveIdentity resolves the authenticated TikTok user
func (p *TikTokProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body tiktokUserResponse
	url := p.baseURL + "/v2/user/info/?fields=open_id,display_name,profile_deep_link"
	if err := getJSON(ctx, p.client, p.Name(), url, accessToken, &body); err != nil {
		return nil, err
	}

	if body.Error.Code != "" && body.Error.Code != "ok" {
		return nil, &ProviderError{Provider: p.Name(), Reason: "api error " + body.Error.Code}
	}
	if body.Data.User.OpenID == "" {
		return nil, &ProviderError{Provider: p.Name(), Reason: "response missing open_id"}
	}

	return &entities.PlatformIdentity{
		ExternalID: body.Data.User.OpenID,
		Handle:     body.Data.User.DisplayName,
		URL:        body.Data.User.ProfileLink,
	}, nil
}
