package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for the verification core
type Metrics struct {
	DomainChecksRun    prometheus.Counter
	DomainsVerified    prometheus.Counter
	PlatformsVerified  *prometheus.CounterVec
	BioChecksRun       prometheus.Counter
	ProfilesDemoted    prometheus.Counter
	RetentionProcessed prometheus.Counter
}

// New creates all metrics on the default registerer
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics on the given registerer. Tests pass a
// fresh registry so repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DomainChecksRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "aeobro_domain_checks_total",
			Help: "Total number of DNS verification checks run",
		}),
		DomainsVerified: factory.NewCounter(prometheus.CounterOpts{
			Name: "aeobro_domains_verified_total",
			Help: "Total number of domain claims transitioned to VERIFIED",
		}),
		PlatformsVerified: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aeobro_platforms_verified_total",
			Help: "Total number of platform accounts verified, by provider",
		}, []string{"provider"}),
		BioChecksRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "aeobro_bio_checks_total",
			Help: "Total number of code-in-bio checks run",
		}),
		ProfilesDemoted: factory.NewCounter(prometheus.CounterOpts{
			Name: "aeobro_profiles_demoted_total",
			Help: "Total number of profiles demoted to UNVERIFIED",
		}),
		RetentionProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "aeobro_retention_profiles_deleted_total",
			Help: "Total number of lapsed profiles soft-deleted by the retention sweep",
		}),
	}
}
