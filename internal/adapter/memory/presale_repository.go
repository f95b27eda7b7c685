package memory

import (
	"context"
	"sync"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// PresaleRepository is an in-memory implementation of
// port.PresaleRepository. It backs tests and standalone runs. Records are
// stored by value; callers always receive copies.
type PresaleRepository struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	feeBip    int64
}

// NewPresaleRepository creates an empty repository with the given initial
// fee rate.
func NewPresaleRepository(feeBip int64) *PresaleRepository {
	return &PresaleRepository{feeBip: feeBip}
}

// CreateBatch appends all campaigns atomically with sequential IDs.
func (r *PresaleRepository) CreateBatch(_ context.Context, campaigns []*domain.Campaign) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		rec := *c
		rec.ID = int64(len(r.campaigns))
		r.campaigns = append(r.campaigns, rec)
		ids = append(ids, rec.ID)
	}
	return ids, nil
}

// Get returns a copy of the record or ErrInvalidID.
func (r *PresaleRepository) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 0 || id >= int64(len(r.campaigns)) {
		return nil, port.ErrInvalidID
	}
	rec := r.campaigns[id]
	return &rec, nil
}

// List returns copies of all records ordered by ID.
func (r *PresaleRepository) List(_ context.Context) ([]*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Campaign, 0, len(r.campaigns))
	for i := range r.campaigns {
		rec := r.campaigns[i]
		out = append(out, &rec)
	}
	return out, nil
}

// Update applies fn to a copy of the record and stores it only when fn
// succeeds.
func (r *PresaleRepository) Update(_ context.Context, id int64, fn func(*domain.Campaign) error) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 0 || id >= int64(len(r.campaigns)) {
		return nil, port.ErrInvalidID
	}
	rec := r.campaigns[id]
	if err := fn(&rec); err != nil {
		return nil, err
	}
	r.campaigns[id] = rec
	out := rec
	return &out, nil
}

// UsageFee returns the stored fee rate.
func (r *PresaleRepository) UsageFee(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.feeBip, nil
}

// SetUsageFee stores the fee rate unconditionally.
func (r *PresaleRepository) SetUsageFee(_ context.Context, bip int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feeBip = bip
	return nil
}

var _ port.PresaleRepository = (*PresaleRepository)(nil)
