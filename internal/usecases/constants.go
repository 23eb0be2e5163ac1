package usecases

import (
	"aeobro.backend/internal/domain/entities"
)

// PlanLimits is the immutable per-tier configuration table. It is built
// once at package init and never mutated at runtime.
type PlanLimits struct {
	Plan                entities.Plan
	SyndicationEligible bool
	MaxPlatformAccounts int
}

var planTable = map[entities.Plan]PlanLimits{
	entities.PlanFree: {
		Plan:                entities.PlanFree,
		SyndicationEligible: false,
		MaxPlatformAccounts: 3,
	},
	entities.PlanPro: {
		Plan:                entities.PlanPro,
		SyndicationEligible: true,
		MaxPlatformAccounts: 10,
	},
	entities.PlanTeam: {
		Plan:                entities.PlanTeam,
		SyndicationEligible: true,
		MaxPlatformAccounts: 25,
	},
}

// PlanLimitsFor returns the limits for a plan, defaulting unknown plans
// to the free tier.
func PlanLimitsFor(plan entities.Plan) PlanLimits {
	if limits, ok := planTable[plan]; ok {
		return limits
	}
	return planTable[entities.PlanFree]
}

// activePlanStatuses are the billing states counted as "in good standing"
var activePlanStatuses = map[entities.PlanStatus]bool{
	entities.PlanStatusActive:   true,
	entities.PlanStatusTrialing: true,
}

// allowedPlatformContexts maps provider -> permitted context sub-kinds.
// An empty set means the provider takes no context. DNS proof can never
// create a platform account row; it is not a provider here at all.
var allowedPlatformContexts = map[string]map[string]bool{
	"google":    {"google-youtube": true},
	"github":    {},
	"facebook":  {},
	"x":         {},
	"tiktok":    {},
	"linkedin":  {},
	"instagram": {},
}

// bioCheckPlatforms are the platforms supported by code-in-bio proof
var bioCheckPlatforms = map[string]bool{
	"x":         true,
	"tiktok":    true,
	"instagram": true,
	"github":    true,
}

// ProviderContextAllowed reports whether (provider, context) is a valid
// pairing. A blank context is always acceptable for a known provider.
func ProviderContextAllowed(provider, context string) bool {
	contexts, ok := allowedPlatformContexts[provider]
	if !ok {
		return false
	}
	if context == "" {
		return true
	}
	return contexts[context]
}

// BioPlatformAllowed reports whether a platform supports code-in-bio proof
func BioPlatformAllowed(platform string) bool {
	return bioCheckPlatforms[platform]
}
