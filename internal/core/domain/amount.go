package domain

import "github.com/shopspring/decimal"

// NativeAsset is the asset id of the native currency on the value-transfer
// ledger. Every campaign sells one token asset for native units.
const NativeAsset = "native"

// EscrowAccount holds inventory and payments in system custody between
// campaign creation and settlement.
const EscrowAccount = "presale:escrow"

// BasisPointDenominator: 10000 bip = 100%.
const BasisPointDenominator = 10000

// RequiredPayment returns the native currency owed for tokenAmount base
// units priced at unitPrice per whole token: tokenAmount * unitPrice / 1e18,
// truncated. Shift keeps the arithmetic exact; Floor defines the rounding.
func RequiredPayment(tokenAmount, unitPrice decimal.Decimal) decimal.Decimal {
	return tokenAmount.Mul(unitPrice).Shift(-18).Floor()
}

// UsageFee returns amount * bip / 10000, truncated.
func UsageFee(amount decimal.Decimal, bip int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(bip)).Shift(-4).Floor()
}

// IsWholeNonNegative reports whether d is an integer >= 0. Ledger amounts
// are base units, so fractional values are never valid.
func IsWholeNonNegative(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Truncate(0))
}
