package repositories

import (
	"context"
)

// UnitOfWork executes a function within a single transaction scope.
// Verification transitions use it to update a proof row and the owning
// profile atomically so no reader observes a partially-applied state.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
