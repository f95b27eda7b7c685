package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// PresaleRepository implements port.PresaleRepository using pgxpool.
// Amounts are stored as NUMERIC(78,0) and travel as text to avoid any
// binary-format precision loss. Mutations run in serializable
// transactions with the campaign row locked, mirroring the single-writer
// model: the in-flight operation is the only writer for its campaign.
type PresaleRepository struct {
	pool *pgxpool.Pool
}

// NewPresaleRepository returns a new repository instance.
func NewPresaleRepository(pool *pgxpool.Pool) *PresaleRepository {
	return &PresaleRepository{pool: pool}
}

const campaignColumns = `id, owner, start_time, end_time, unit_price::text, total_amount::text, amount_left::text, raised::text, state, sale_token, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                                      domain.Campaign
		unitPrice, total, left, raised, status string
	)
	err := row.Scan(&c.ID, &c.Owner, &c.StartTime, &c.EndTime, &unitPrice, &total, &left, &raised, &status, &c.SaleToken, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if c.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, fmt.Errorf("parse unit_price: %w", err)
	}
	if c.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse total_amount: %w", err)
	}
	if c.AmountLeft, err = decimal.NewFromString(left); err != nil {
		return nil, fmt.Errorf("parse amount_left: %w", err)
	}
	if c.Raised, err = decimal.NewFromString(raised); err != nil {
		return nil, fmt.Errorf("parse raised: %w", err)
	}
	c.State = domain.ParseState(status)
	return &c, nil
}

// CreateBatch inserts all campaigns in one serializable transaction,
// assigning sequential IDs.
func (r *PresaleRepository) CreateBatch(ctx context.Context, campaigns []*domain.Campaign) ([]int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var next int64
	if err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(id) + 1, 0) FROM campaigns`).Scan(&next); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		id := next
		next++
		_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, owner, start_time, end_time, unit_price, total_amount, amount_left, raised, state, sale_token, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5::numeric,$6::numeric,$7::numeric,$8::numeric,$9,$10,$11,$12)`,
			id, c.Owner, c.StartTime, c.EndTime,
			c.UnitPrice.String(), c.TotalAmount.String(), c.AmountLeft.String(), c.Raised.String(),
			c.State.String(), c.SaleToken, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Get returns the campaign or ErrInvalidID.
func (r *PresaleRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrInvalidID
	}
	return c, err
}

// List returns all campaigns ordered by ID.
func (r *PresaleRepository) List(ctx context.Context) ([]*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update locks the campaign row, applies fn and writes the result back.
// fn errors abort the transaction and surface verbatim.
func (r *PresaleRepository) Update(ctx context.Context, id int64, fn func(*domain.Campaign) error) (*domain.Campaign, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrInvalidID
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err = fn(c); err != nil {
		return nil, err
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns
SET amount_left = $1::numeric, raised = $2::numeric, state = $3, updated_at = $4
WHERE id = $5`,
		c.AmountLeft.String(), c.Raised.String(), c.State.String(), c.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UsageFee reads the global fee rate.
func (r *PresaleRepository) UsageFee(ctx context.Context) (int64, error) {
	var bip int64
	err := r.pool.QueryRow(ctx, `SELECT usage_fee_bip FROM ledger_settings WHERE singleton`).Scan(&bip)
	return bip, err
}

// SetUsageFee stores the global fee rate.
func (r *PresaleRepository) SetUsageFee(ctx context.Context, bip int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE ledger_settings SET usage_fee_bip = $1 WHERE singleton`, bip)
	return err
}

var _ port.PresaleRepository = (*PresaleRepository)(nil)
