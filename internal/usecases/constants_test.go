package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"aeobro.backend/internal/domain/entities"
	"aeobro.backend/internal/infrastructure/platform"
)

func TestPlanLimitsFor(t *testing.T) {
	t.Run("free tier is not syndication eligible", func(t *testing.T) {
		limits := PlanLimitsFor(entities.PlanFree)
		assert.False(t, limits.SyndicationEligible)
		assert.Equal(t, 3, limits.MaxPlatformAccounts)
	})

	t.Run("paid tiers are syndication eligible", func(t *testing.T) {
		assert.True(t, PlanLimitsFor(entities.PlanPro).SyndicationEligible)
		assert.True(t, PlanLimitsFor(entities.PlanTeam).SyndicationEligible)
	})

	t.Run("unknown plan falls back to free", func(t *testing.T) {
		assert.Equal(t, PlanLimitsFor(entities.PlanFree), PlanLimitsFor(entities.Plan("ENTERPRISE")))
	})
}

func TestProviderContextAllowed(t *testing.T) {
	t.Run("known provider with blank context", func(t *testing.T) {
		assert.True(t, ProviderContextAllowed("github", ""))
		assert.True(t, ProviderContextAllowed("x", ""))
	})

	t.Run("google youtube context", func(t *testing.T) {
		assert.True(t, ProviderContextAllowed("google", "google-youtube"))
		assert.False(t, ProviderContextAllowed("google", "google-drive"))
	})

	t.Run("context on a contextless provider is rejected", func(t *testing.T) {
		assert.False(t, ProviderContextAllowed("github", "github-enterprise"))
	})

	t.Run("unknown provider is rejected outright", func(t *testing.T) {
		assert.False(t, ProviderContextAllowed("myspace", ""))
	})
}

func TestProviderTableMatchesRegistry(t *testing.T) {
	// Every provider the validation table admits must be resolvable, or
	// a request would pass validation only to die at the registry.
	registry := platform.DefaultRegistry()
	for provider := range allowedPlatformContexts {
		_, err := registry.Get(provider)
		assert.NoError(t, err, "provider %q allowed but not registered", provider)
	}
}

func TestBioPlatformAllowed(t *testing.T) {
	assert.True(t, BioPlatformAllowed("x"))
	assert.True(t, BioPlatformAllowed("instagram"))
	assert.True(t, BioPlatformAllowed("tiktok"))
	assert.True(t, BioPlatformAllowed("github"))
	assert.False(t, BioPlatformAllowed("google"))
	assert.False(t, BioPlatformAllowed("linkedin"))
	assert.False(t, BioPlatformAllowed(""))
}
