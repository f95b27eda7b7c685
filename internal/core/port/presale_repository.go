package port

import (
	"context"

	"presale-ledger/internal/core/domain"
)

// PresaleRepository is the outbound persistence port for campaign records
// and the global fee rate. Implementations must be concurrency-safe and
// apply each Update atomically: either the mutation function succeeds and
// the whole new record is stored, or nothing changes.
type PresaleRepository interface {
	// CreateBatch records all campaigns atomically, assigning sequential
	// IDs starting at the current count, and returns the assigned IDs in
	// order. Campaigns are expected to be pre-validated.
	CreateBatch(ctx context.Context, campaigns []*domain.Campaign) ([]int64, error)

	// Get returns a copy of the campaign record. Unknown IDs return
	// ErrInvalidID, never a zero record.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)

	// List returns copies of all campaign records ordered by ID.
	List(ctx context.Context) ([]*domain.Campaign, error)

	// Update applies fn to the current record under exclusive access and
	// persists the result. If fn returns an error the record is left
	// untouched and the error is returned verbatim. The updated copy is
	// returned on success.
	Update(ctx context.Context, id int64, fn func(*domain.Campaign) error) (*domain.Campaign, error)

	// UsageFee returns the protocol fee rate in basis points.
	UsageFee(ctx context.Context) (int64, error)

	// SetUsageFee stores the protocol fee rate unconditionally.
	SetUsageFee(ctx context.Context, bip int64) error
}
