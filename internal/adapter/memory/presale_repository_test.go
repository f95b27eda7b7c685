package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

func draft(owner string, amount int64) *domain.Campaign {
	total := decimal.NewFromInt(amount)
	return &domain.Campaign{
		Owner:       owner,
		StartTime:   100,
		EndTime:     200,
		UnitPrice:   decimal.NewFromInt(1),
		TotalAmount: total,
		AmountLeft:  total,
		State:       domain.StateActive,
		SaleToken:   "token:t",
		CreatedAt:   time.Unix(100, 0),
		UpdatedAt:   time.Unix(100, 0),
	}
}

func TestCreateBatchAssignsSequentialIDs(t *testing.T) {
	r := NewPresaleRepository(0)
	ctx := context.Background()

	ids, err := r.CreateBatch(ctx, []*domain.Campaign{draft("a", 10), draft("b", 20)})
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, ids)

	ids, err = r.CreateBatch(ctx, []*domain.Campaign{draft("c", 30)})
	require.NoError(t, err)
	require.Equal(t, []int64{2}, ids)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "c", all[2].Owner)
}

func TestGetUnknownID(t *testing.T) {
	r := NewPresaleRepository(0)

	_, err := r.Get(context.Background(), 0)
	require.ErrorIs(t, err, port.ErrInvalidID)
	_, err = r.Get(context.Background(), -1)
	require.ErrorIs(t, err, port.ErrInvalidID)
}

func TestGetReturnsCopy(t *testing.T) {
	r := NewPresaleRepository(0)
	ctx := context.Background()
	_, err := r.CreateBatch(ctx, []*domain.Campaign{draft("a", 10)})
	require.NoError(t, err)

	c, err := r.Get(ctx, 0)
	require.NoError(t, err)
	c.AmountLeft = decimal.Zero

	again, err := r.Get(ctx, 0)
	require.NoError(t, err)
	require.True(t, again.AmountLeft.Equal(decimal.NewFromInt(10)), "mutating a returned record must not affect the store")
}

func TestUpdateAtomicity(t *testing.T) {
	r := NewPresaleRepository(0)
	ctx := context.Background()
	_, err := r.CreateBatch(ctx, []*domain.Campaign{draft("a", 10)})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = r.Update(ctx, 0, func(c *domain.Campaign) error {
		c.AmountLeft = decimal.Zero
		return boom
	})
	require.ErrorIs(t, err, boom)

	c, err := r.Get(ctx, 0)
	require.NoError(t, err)
	require.True(t, c.AmountLeft.Equal(decimal.NewFromInt(10)), "failed update must leave the record untouched")

	updated, err := r.Update(ctx, 0, func(c *domain.Campaign) error {
		c.AmountLeft = decimal.NewFromInt(4)
		return nil
	})
	require.NoError(t, err)
	require.True(t, updated.AmountLeft.Equal(decimal.NewFromInt(4)))
}

func TestUsageFeeRoundTrip(t *testing.T) {
	r := NewPresaleRepository(7)
	ctx := context.Background()

	bip, err := r.UsageFee(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(7), bip)

	require.NoError(t, r.SetUsageFee(ctx, 25))
	bip, err = r.UsageFee(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(25), bip)
}
