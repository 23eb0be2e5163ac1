package platform

import (
	"context"
	"net/http"

	"aeobro.backend/internal/domain/entities"
)

// LinkedInProvider resolves identities via the LinkedIn userinfo endpoint
type LinkedInProvider struct {
	client  *http.Client
	baseURL string
}

// NewLinkedInProvider creates a LinkedIn provider
func NewLinkedInProvider(client *http.Client) *LinkedInProvider {
	return &LinkedInProvider{
		client:  client,
		baseURL: "https://api.linkedin.com",
	}
}

func (p *LinkedInProvider) Name() string { return "linkedin" }

type linkedinUserinfoResponse struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
}

// ResolveIdentity resolves the authenticated LinkedIn member
func (p *LinkedInProvider) ResolveIdentity(ctx context.Context, accessToken string) (*entities.PlatformIdentity, error) {
	var body linkedinUserinfoResponse
	if err := getJSON(ctx, p.client, p.Name(), p.baseURL+"/v2/userinfo", accessToken, &body); err != nil {
		return nil, err
	}

	if body.Sub == "" {
		return nil, &ProviderError{Provider: p.Name(), Reason: "response missing sub"}
	}

	return &entities.PlatformIdentity{
		ExternalID: body.Sub,
		Handle:     body.Name,
		URL:        "https://www.linkedin.com/in/" + body.Sub,
	}, nil
}
