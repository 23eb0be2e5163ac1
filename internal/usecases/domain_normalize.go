package usecases

import (
	"strings"

	domainerrors "aeobro.backend/internal/domain/errors"
)

// NormalizeDomain canonicalizes a user-supplied domain: lowercase,
// scheme/path/port/trailing-dot stripped, leading www. removed. Two
// spellings of the same site must map to the same claim key.
func NormalizeDomain(raw string) (string, error) {
	d := strings.TrimSpace(strings.ToLower(raw))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	if i := strings.IndexByte(d, ':'); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimSuffix(d, ".")
	d = strings.TrimPrefix(d, "www.")

	if d == "" || !strings.Contains(d, ".") {
		return "", domainerrors.BadRequest("a valid domain name is required")
	}
	for _, label := range strings.Split(d, ".") {
		if label == "" {
			return "", domainerrors.BadRequest("a valid domain name is required")
		}
	}
	return d, nil
}
