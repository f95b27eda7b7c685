package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// TokenLedger is an in-memory fungible-asset ledger implementing
// port.ValueTransfer. Balances never go negative and the total supply of
// every asset is conserved by Transfer.
type TokenLedger struct {
	mu       sync.RWMutex
	balances map[string]map[string]decimal.Decimal // asset -> account -> balance
}

// NewTokenLedger creates an empty ledger.
func NewTokenLedger() *TokenLedger {
	return &TokenLedger{balances: make(map[string]map[string]decimal.Decimal)}
}

// Mint credits amount of asset to account, growing the asset's supply.
func (l *TokenLedger) Mint(asset, account string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts, ok := l.balances[asset]
	if !ok {
		accounts = make(map[string]decimal.Decimal)
		l.balances[asset] = accounts
	}
	accounts[account] = accounts[account].Add(amount)
}

// BalanceOf returns the balance of account for asset. Unknown pairs have
// a zero balance.
func (l *TokenLedger) BalanceOf(_ context.Context, asset, account string) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[asset][account], nil
}

// Transfer moves amount from one account to another, failing without
// partial effect when the source balance is insufficient.
func (l *TokenLedger) Transfer(_ context.Context, asset, from, to string, amount decimal.Decimal) error {
	if amount.IsNegative() || !domain.IsWholeNonNegative(amount) {
		return fmt.Errorf("invalid %s transfer amount %s", asset, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	accounts, ok := l.balances[asset]
	if !ok || accounts[from].LessThan(amount) {
		return fmt.Errorf("insufficient %s balance of %s", asset, from)
	}
	accounts[from] = accounts[from].Sub(amount)
	accounts[to] = accounts[to].Add(amount)
	return nil
}

// TotalSupply sums all balances of an asset. Used to assert conservation.
func (l *TokenLedger) TotalSupply(asset string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, b := range l.balances[asset] {
		total = total.Add(b)
	}
	return total
}

var _ port.ValueTransfer = (*TokenLedger)(nil)
