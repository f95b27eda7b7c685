package domain

import "github.com/shopspring/decimal"

// Notification events emitted by the ledger, consumed by external
// observers. Field sets mirror the historical event log so downstream
// consumers can match on them.

// CampaignStarted is emitted once per campaign recorded by a creation call.
type CampaignStarted struct {
	Owner     string
	ID        int64
	StartTime int64
	EndTime   int64
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
	SaleToken string
}

// Purchased is emitted after a successful buy. ReceiptID uniquely
// identifies the purchase.
type Purchased struct {
	ReceiptID   string
	Buyer       string
	TokenAmount decimal.Decimal
	UnitPrice   decimal.Decimal
}

// InventoryUpdated is emitted whenever a campaign's remaining inventory
// changes during the active window.
type InventoryUpdated struct {
	ID         int64
	SaleToken  string
	AmountLeft decimal.Decimal
}

// CampaignClosed is emitted when a campaign transitions to Closed.
// AmountRouted is the sold inventory paired into the liquidity pool.
type CampaignClosed struct {
	Owner        string
	ID           int64
	AmountRouted decimal.Decimal
}

// Withdrawn is emitted when leftover inventory is released to the owner.
type Withdrawn struct {
	Owner  string
	ID     int64
	Amount decimal.Decimal
}
