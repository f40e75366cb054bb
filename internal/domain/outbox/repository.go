package outbox

import (
	"context"
	"time"
)

// Claim identifies one relay's hold on a batch.
type Claim struct {
	Owner string
	// Now decides which leases have expired and which retries are due.
	Now   time.Time
	Until time.Time
}

type Repository interface {
	Append(ctx context.Context, e *Event) error
	// ClaimDeliverable leases up to limit PENDING or due FAILED rows to
	// claim.Owner and returns them in id order. Rows leased to another owner
	// are left out, and so is every later row of a stream whose earlier row
	// is leased elsewhere or still backing off.
	ClaimDeliverable(ctx context.Context, claim Claim, limit int) ([]*Event, error)
	// MarkPublished also drops the lease.
	MarkPublished(ctx context.Context, id uint, at time.Time) error
	// MarkFailed increments attempts, stores the error, drops the lease and
	// holds the row back until retryAt. The row becomes DEAD when dead is true.
	MarkFailed(ctx context.Context, id uint, lastError string, dead bool, retryAt time.Time) error
	// Release drops owner's lease on rows it claimed but did not attempt.
	Release(ctx context.Context, owner string, ids []uint) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
