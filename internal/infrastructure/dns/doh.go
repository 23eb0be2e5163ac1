package dns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const typeTXT = 16

// DoHResolver resolves TXT records over DNS-over-HTTPS using the
// Google/Cloudflare JSON wire format. It serves as a fallback when the
// host's resolver is unavailable or filtered.
type DoHResolver struct {
	endpoint string
	client   *http.Client
}

// NewDoHResolver creates a resolver against a JSON DoH endpoint,
// e.g. https://dns.google/resolve or https://cloudflare-dns.com/dns-query.
func NewDoHResolver(endpoint string, timeout time.Duration) *DoHResolver {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &DoHResolver{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type dohResponse struct {
	Status int `json:"Status"`
	Answer []struct {
		Type int    `json:"type"`
		Data string `json:"data"`
	} `json:"Answer"`
}

// LookupTXT resolves TXT records for host. NXDOMAIN (Status 3) is an
// empty result, not an error.
func (d *DoHResolver) LookupTXT(ctx context.Context, host string) ([]string, error) {
	u := fmt.Sprintf("%s?name=%s&type=TXT", d.endpoint, url.QueryEscape(host))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("doh query failed: status %d", resp.StatusCode)
	}

	var body dohResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("doh response decode: %w", err)
	}

	// Status 3 is NXDOMAIN: treat as no records
	if body.Status == 3 {
		return nil, nil
	}
	if body.Status != 0 {
		return nil, fmt.Errorf("doh query failed: rcode %d", body.Status)
	}

	var records []string
	for _, a := range body.Answer {
		if a.Type == typeTXT {
			records = append(records, a.Data)
		}
	}
	return records, nil
}
