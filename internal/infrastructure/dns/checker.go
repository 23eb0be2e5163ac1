package dns

import (
	"context"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
	"aeobro.backend/pkg/crypto"
	"aeobro.backend/pkg/logger"
)

const (
	// VerifySubdomain is the preferred host for the verification record
	VerifySubdomain = "_aeobro-verify"
	// LegacyVerifySubdomain is the older host still probed
	LegacyVerifySubdomain = "_aeobro"

	defaultLookupTimeout = 5 * time.Second
)

// TXTResolver resolves TXT records for a hostname. NXDOMAIN and other
// resolution faults are expected during propagation; implementations
// report them as errors and the checker downgrades them to "no match".
type TXTResolver interface {
	LookupTXT(ctx context.Context, host string) ([]string, error)
}

// Checker verifies domain control by probing candidate hostnames for an
// expected TXT value.
type Checker struct {
	resolver TXTResolver
	fallback TXTResolver
	timeout  time.Duration
}

// NewChecker creates a checker backed by the system resolver with an
// optional DNS-over-HTTPS fallback (nil disables the fallback).
func NewChecker(resolver, fallback TXTResolver, timeout time.Duration) *Checker {
	if resolver == nil {
		resolver = &netResolver{r: net.DefaultResolver}
	}
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &Checker{resolver: resolver, fallback: fallback, timeout: timeout}
}

// CandidateHosts returns the ordered hostnames probed for a domain
func CandidateHosts(domain string) []string {
	return []string{
		VerifySubdomain + "." + domain,
		LegacyVerifySubdomain + "." + domain,
		domain,
	}
}

// acceptedValues returns the ordered record values accepted as proof
func acceptedValues(token string) []string {
	values := []string{crypto.TXTRecordValue(token)}
	return append(values, crypto.LegacyTXTRecordValues(token)...)
}

// CheckDomain reports whether any candidate host publishes a TXT record
// matching the expected token. Resolution faults never surface as
// errors: propagation delay is the steady state, so any DNS-layer
// failure yields false, and the first matching host short-circuits the
// remaining probes.
func (c *Checker) CheckDomain(ctx context.Context, domain, token string) bool {
	if domain == "" || token == "" {
		return false
	}

	accepted := make([]string, 0, 3)
	for _, v := range acceptedValues(token) {
		accepted = append(accepted, strings.ToLower(v))
	}

	for _, host := range CandidateHosts(domain) {
		records := c.lookup(ctx, host)
		for _, raw := range records {
			value := NormalizeTXT(raw)
			if value == "" {
				continue
			}
			for _, want := range accepted {
				if value == want || strings.Contains(value, want) {
					logger.Debug(ctx, "dns verification record matched",
						zap.String("domain", domain), zap.String("host", host))
					return true
				}
			}
		}
	}
	return false
}

func (c *Checker) lookup(ctx context.Context, host string) []string {
	lookupCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	records, err := c.resolver.LookupTXT(lookupCtx, host)
	if err == nil {
		return records
	}

	if c.fallback == nil {
		logger.Debug(ctx, "txt lookup failed", zap.String("host", host), zap.Error(err))
		return nil
	}

	fbCtx, fbCancel := context.WithTimeout(ctx, c.timeout)
	defer fbCancel()

	records, fbErr := c.fallback.LookupTXT(fbCtx, host)
	if fbErr != nil {
		logger.Debug(ctx, "txt lookup failed on both resolvers",
			zap.String("host", host), zap.NamedError("primary", err), zap.NamedError("fallback", fbErr))
		return nil
	}
	return records
}

// NormalizeTXT lowercases, trims and unquotes a fetched TXT string.
// Resolvers may return values as multiple quoted chunks; quoted
// segments are concatenated before comparison.
func NormalizeTXT(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, `"`) {
		var b strings.Builder
		for _, part := range strings.Split(s, `"`) {
			part = strings.TrimSpace(part)
			if part != "" {
				b.WriteString(part)
			}
		}
		s = b.String()
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// netResolver adapts net.Resolver to TXTResolver
type netResolver struct {
	r *net.Resolver
}

func (n *netResolver) LookupTXT(ctx context.Context, host string) ([]string, error) {
	return n.r.LookupTXT(ctx, host)
}
