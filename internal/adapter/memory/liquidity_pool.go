package memory

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// PoolAccount holds pool reserves on the value-transfer ledger.
const PoolAccount = "presale:pool"

// LiquidityPool is an in-memory constant-product pool implementing
// port.LiquidityPool. Deposits are pulled from the system escrow account;
// pool shares are tracked per recipient. The first deposit into a pair
// mints sqrt(tokenAmount * currencyAmount) shares, later deposits mint
// proportionally to the smaller side.
type LiquidityPool struct {
	ledger port.ValueTransfer

	mu    sync.RWMutex
	pairs map[string]*pairState // keyed by sale token asset id
}

type pairState struct {
	reserveToken    decimal.Decimal
	reserveCurrency decimal.Decimal
	totalShares     decimal.Decimal
	shares          map[string]decimal.Decimal
}

// NewLiquidityPool creates a pool backed by the given ledger.
func NewLiquidityPool(ledger port.ValueTransfer) *LiquidityPool {
	return &LiquidityPool{ledger: ledger, pairs: make(map[string]*pairState)}
}

// AddLiquidity deposits the paired amounts from escrow and mints shares
// to recipient.
func (p *LiquidityPool) AddLiquidity(ctx context.Context, token string, tokenAmount, currencyAmount decimal.Decimal, recipient string) (decimal.Decimal, error) {
	if tokenAmount.IsNegative() || currencyAmount.IsNegative() {
		return decimal.Zero, errors.New("negative liquidity amount")
	}

	if err := p.ledger.Transfer(ctx, token, domain.EscrowAccount, PoolAccount, tokenAmount); err != nil {
		return decimal.Zero, err
	}
	if err := p.ledger.Transfer(ctx, domain.NativeAsset, domain.EscrowAccount, PoolAccount, currencyAmount); err != nil {
		_ = p.ledger.Transfer(ctx, token, PoolAccount, domain.EscrowAccount, tokenAmount)
		return decimal.Zero, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pair, ok := p.pairs[token]
	if !ok {
		pair = &pairState{shares: make(map[string]decimal.Decimal)}
		p.pairs[token] = pair
	}

	var minted decimal.Decimal
	if pair.totalShares.IsZero() {
		minted = sqrtFloor(tokenAmount.Mul(currencyAmount))
	} else {
		byToken, _ := tokenAmount.Mul(pair.totalShares).QuoRem(pair.reserveToken, 0)
		byCurrency, _ := currencyAmount.Mul(pair.totalShares).QuoRem(pair.reserveCurrency, 0)
		minted = decimal.Min(byToken, byCurrency)
	}

	pair.reserveToken = pair.reserveToken.Add(tokenAmount)
	pair.reserveCurrency = pair.reserveCurrency.Add(currencyAmount)
	pair.totalShares = pair.totalShares.Add(minted)
	pair.shares[recipient] = pair.shares[recipient].Add(minted)
	return minted, nil
}

// SharesOf returns recipient's share balance for a pair.
func (p *LiquidityPool) SharesOf(token, account string) decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()

	pair, ok := p.pairs[token]
	if !ok {
		return decimal.Zero
	}
	return pair.shares[account]
}

// Reserves returns the current pair reserves.
func (p *LiquidityPool) Reserves(token string) (tokenReserve, currencyReserve decimal.Decimal) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	pair, ok := p.pairs[token]
	if !ok {
		return decimal.Zero, decimal.Zero
	}
	return pair.reserveToken, pair.reserveCurrency
}

func sqrtFloor(d decimal.Decimal) decimal.Decimal {
	i := d.Truncate(0).BigInt()
	if i.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(new(big.Int).Sqrt(i), 0)
}

var _ port.LiquidityPool = (*LiquidityPool)(nil)
