package platform

import (
	"context"
	"net/http"

	"aeobro.backend/internal/domain/entities"
)

// GoogleProvider resolves identities via the YouTube Data API. A Google
// account is only a usable proof when it carries a channel, so the
// channel is the canonical identity and the platform context is
// recorded as google-youtube.
type GoogleProvider struct {
	client  *http.Client
	baseURL string
}

// NewGoogleProvider creates a Google provider
func NewGoogleProvider(client *http.Client) *GoogleProvider {
	return &GoogleProvider{
		client:  client,
		baseURL: "https://www.googleapis.com",
	}
}

func (p *GoogleProvider) Name() string { return "google" }

type youtubeChannelsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title     string `json:"title"`
			CustomURL string `json:"customUrl"`
		} `json:"snippet"`
	} `json:"items"`
}

// ResolveIdentity resolves the authenticated user's YouTube channel
func (p *GoogleProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body youtubeChannelsResponse
	url := p.baseURL + "/youtube/v3/channels?part=snippet&mine=true"
	if err := getJSON(ctx, p.client, p.Name(), url, accessToken, &body); err != nil {
		return nil, err
	}

	if len(body.Items) == 0 {
		return nil, &ProviderError{Provider: p.Name(), Reason: "account has no youtube channel"}
	}

	channel := body.Items[0]
	handle := channel.Snippet.CustomURL
	if handle == "" {
		handle = channel.Snippet.Title
	}

	return &entities.PlatformIdentity{
		ExternalID:      channel.ID,
		Handle:          handle,
		URL:             "https://www.youtube.com/channel/" + channel.ID,
		PlatformContext: "google-youtube",
	}, nil
}
