package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// EscrowFunding describes the ledger balances a stored campaign expects
// in system custody: its remaining inventory and the currency raised so
// far.
type EscrowFunding struct {
	SaleToken  string
	AmountLeft decimal.Decimal
	Raised     decimal.Decimal
}

// Seed inserts demo campaigns into the presale-ledger database and
// returns the escrow funding of every active campaign, so the in-process
// ledger can be provisioned to match the stored records. Amounts use
// 18-decimal base units; prices are native smallest units per whole
// token.
func Seed(ctx context.Context, pool *pgxpool.Pool) ([]EscrowFunding, error) {
	now := time.Now().Unix()

	for i := 0; i < 3; i++ {
		owner := fmt.Sprintf("demo:owner-%d", i+1)
		token := "token:" + uuid.NewString()
		total := fmt.Sprintf("%d000000000000000000", 100*(i+1)) // 100, 200, 300 whole tokens
		price := "1000000000000000000"                          // 1 native unit per token

		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, owner, start_time, end_time, unit_price, total_amount, amount_left, raised, state, sale_token)
VALUES ($1,$2,$3,$4,$5::numeric,$6::numeric,$6::numeric,0,'active',$7) ON CONFLICT DO NOTHING`,
			i, owner, now, now+int64(3600*(i+1)), price, total, token)
		if err != nil {
			return nil, err
		}
	}

	rows, err := pool.Query(ctx, `SELECT sale_token, amount_left::text, raised::text FROM campaigns WHERE state = 'active'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fundings []EscrowFunding
	for rows.Next() {
		var (
			f            EscrowFunding
			left, raised string
		)
		if err = rows.Scan(&f.SaleToken, &left, &raised); err != nil {
			return nil, err
		}
		if f.AmountLeft, err = decimal.NewFromString(left); err != nil {
			return nil, err
		}
		if f.Raised, err = decimal.NewFromString(raised); err != nil {
			return nil, err
		}
		fundings = append(fundings, f)
	}
	return fundings, rows.Err()
}
