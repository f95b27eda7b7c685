package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// ValueTransfer is the fungible-asset ledger consumed by the presale
// engine. Assets are identified by string id; the native currency uses
// domain.NativeAsset. The ledger is external: its calls may fail or, in
// an adversarial implementation, call back into the engine, so the engine
// treats every call as an interaction in the checks-effects-interactions
// sense and any error as a hard failure of the enclosing operation.
type ValueTransfer interface {
	// BalanceOf returns the balance of account for the given asset.
	BalanceOf(ctx context.Context, asset, account string) (decimal.Decimal, error)

	// Transfer moves amount base units of asset from one account to
	// another. It fails without partial effect on insufficient balance.
	Transfer(ctx context.Context, asset, from, to string, amount decimal.Decimal) error
}

// LiquidityPool is the automated-market-maker port. AddLiquidity deposits
// a paired amount of sale token and native currency, minting pool shares
// to recipient.
type LiquidityPool interface {
	AddLiquidity(ctx context.Context, token string, tokenAmount, currencyAmount decimal.Decimal, recipient string) (decimal.Decimal, error)
}
