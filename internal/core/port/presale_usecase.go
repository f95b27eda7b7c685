package port

import (
	"context"

	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
)

// PresaleUseCase is the inbound port of the presale ledger. Every
// state-mutating operation runs to completion or fails synchronously with
// no partial effect; recovery is the caller's responsibility.
type PresaleUseCase interface {
	// StartPresales records a batch of campaigns, escrowing each
	// inventory amount from caller before the records become visible.
	// The whole batch is rejected on any shape error.
	StartPresales(ctx context.Context, caller string, req StartPresalesRequest) ([]int64, error)

	// Presale returns the immutable view of one campaign record.
	Presale(ctx context.Context, id int64) (*domain.Campaign, error)

	// ListPresales returns all campaign records ordered by ID.
	ListPresales(ctx context.Context) ([]*domain.Campaign, error)

	// Buy sells tokenAmount base units of the campaign's sale token to
	// buyer for payment native units at the campaign's fixed price.
	Buy(ctx context.Context, buyer string, id int64, tokenAmount, payment decimal.Decimal) (*PurchaseReceipt, error)

	// EndPresale closes a campaign after its window, routing the raised
	// currency and matching sold inventory into the liquidity pool.
	// Owner only, effective at most once.
	EndPresale(ctx context.Context, caller string, id int64) (*SettlementResult, error)

	// Withdraw releases unsold inventory to the owner of a closed
	// campaign. Owner only, effective at most once.
	Withdraw(ctx context.Context, caller string, id int64) (decimal.Decimal, error)

	// SetUsageFee stores the protocol fee rate in basis points. Admin only.
	SetUsageFee(ctx context.Context, caller string, bip int64) error

	// UsageFee returns the current protocol fee rate.
	UsageFee(ctx context.Context) (int64, error)
}

// StartPresalesRequest carries the batched parallel arrays of a creation
// call. All slices must have equal length.
type StartPresalesRequest struct {
	StartTimes []int64
	EndTimes   []int64
	UnitPrices []decimal.Decimal
	Amounts    []decimal.Decimal
	SaleTokens []string
}

// PurchaseReceipt is returned to the buyer after a successful purchase.
type PurchaseReceipt struct {
	ReceiptID   string
	CampaignID  int64
	TokenAmount decimal.Decimal
	UnitPrice   decimal.Decimal
	Payment     decimal.Decimal
	AmountLeft  decimal.Decimal
}

// SettlementResult describes the liquidity provisioning performed when a
// campaign was closed.
type SettlementResult struct {
	CampaignID     int64
	TokensRouted   decimal.Decimal
	CurrencyRouted decimal.Decimal
	Fee            decimal.Decimal
	SharesMinted   decimal.Decimal
}
