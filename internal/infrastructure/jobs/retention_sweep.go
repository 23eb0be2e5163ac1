package jobs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"aeobro.backend/internal/domain/repositories"
	"aeobro.backend/internal/infrastructure/metrics"
)

// RetentionSweepJob hard-unpublishes profiles whose retention window
// has lapsed. Each pass leases a batch before deleting it so two
// concurrent sweepers never double-process; a crashed sweeper's lease
// goes stale and the batch is picked up again on a later pass.
type RetentionSweepJob struct {
	repo      repositories.ProfileRepository
	metrics   *metrics.Metrics
	interval  time.Duration
	batchSize int
	staleness time.Duration
	holder    string
	stop      chan struct{}
	now       func() time.Time
}

func NewRetentionSweepJob(repo repositories.ProfileRepository, m *metrics.Metrics, interval time.Duration, batchSize int, staleness time.Duration) *RetentionSweepJob {
	if interval <= 0 {
		interval = time.Hour
	}
	if batchSize <= 0 {
		batchSize = 200
	}
	if staleness <= 0 {
		staleness = 30 * time.Minute
	}
	hostname, _ := os.Hostname()
	return &RetentionSweepJob{
		repo:      repo,
		metrics:   m,
		interval:  interval,
		batchSize: batchSize,
		staleness: staleness,
		holder:    hostname + "/" + uuid.NewString(),
		stop:      make(chan struct{}),
		now:       time.Now,
	}
}

func (j *RetentionSweepJob) Start(ctx context.Context) {
	log.Println("🕐 Starting retention sweep job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Retention sweep job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Retention sweep job stopped")
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

func (j *RetentionSweepJob) Stop() {
	close(j.stop)
}

// RunOnce performs a single sweep pass. Exported so operators can
// trigger a pass out of band and tests can drive the job without the
// ticker.
func (j *RetentionSweepJob) RunOnce(ctx context.Context) {
	now := j.now()
	staleBefore := now.Add(-j.staleness)

	batch, err := j.repo.SelectRetentionBatch(ctx, now, staleBefore, j.batchSize)
	if err != nil {
		log.Printf("❌ Error selecting retention batch: %v", err)
		return
	}
	if len(batch) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(batch))
	for _, p := range batch {
		ids = append(ids, p.ID)
	}

	if err := j.repo.LeaseBatch(ctx, ids, j.holder, now); err != nil {
		log.Printf("❌ Error leasing retention batch: %v", err)
		return
	}

	deleted, err := j.repo.SoftDeleteBatch(ctx, ids, now)
	if err != nil {
		log.Printf("❌ Error deleting retention batch: %v", err)
		return
	}

	if j.metrics != nil {
		j.metrics.RetentionProcessed.Add(float64(deleted))
	}
	log.Printf("✅ Retention sweep deleted %d of %d candidate profiles", deleted, len(batch))
}
