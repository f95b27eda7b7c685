package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// EndPresale closes a campaign once its window has passed. The raised
// currency, minus the usage fee, is paired with the sold inventory
// (pulled from the owner) and deposited into the liquidity pool; any pool
// shares are minted to the owner. The transition to Closed happens before
// any external call and is reverted if routing fails.
func (l *PresaleLedger) EndPresale(ctx context.Context, caller string, id int64) (*port.SettlementResult, error) {
	bip, err := l.repo.UsageFee(ctx)
	if err != nil {
		return nil, err
	}

	ctx, release, err := l.guard.enter(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	now := l.clock.Now()
	updated, err := l.repo.Update(ctx, id, func(c *domain.Campaign) error {
		if c.Owner != caller {
			return port.ErrNotOwner
		}
		if c.State != domain.StateActive {
			return port.ErrAlreadyClosed
		}
		if !c.Ended(now) {
			return port.ErrNotEnded
		}
		c.State = domain.StateClosed
		c.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	var (
		sold     = updated.Sold()
		raised   = updated.Raised
		fee      = domain.UsageFee(raised, bip)
		currency = raised.Sub(fee)
	)

	rollback := func() error {
		_, rbErr := l.repo.Update(ctx, id, func(c *domain.Campaign) error {
			c.State = domain.StateActive
			return nil
		})
		return rbErr
	}

	if fee.IsPositive() {
		if err = l.ledger.Transfer(ctx, domain.NativeAsset, domain.EscrowAccount, l.admin, fee); err != nil {
			return nil, errors.Join(err, rollback())
		}
	}

	// The owner supplies the token side of the pair, matching the sold
	// inventory already delivered to buyers.
	if sold.IsPositive() {
		if err = l.ledger.Transfer(ctx, updated.SaleToken, updated.Owner, domain.EscrowAccount, sold); err != nil {
			var feeErr error
			if fee.IsPositive() {
				feeErr = l.ledger.Transfer(ctx, domain.NativeAsset, l.admin, domain.EscrowAccount, fee)
			}
			return nil, errors.Join(err, feeErr, rollback())
		}
	}

	shares := decimal.Zero
	if sold.IsPositive() || currency.IsPositive() {
		shares, err = l.pool.AddLiquidity(ctx, updated.SaleToken, sold, currency, updated.Owner)
		if err != nil {
			var tokenErr, feeErr error
			if sold.IsPositive() {
				tokenErr = l.ledger.Transfer(ctx, updated.SaleToken, domain.EscrowAccount, updated.Owner, sold)
			}
			if fee.IsPositive() {
				feeErr = l.ledger.Transfer(ctx, domain.NativeAsset, l.admin, domain.EscrowAccount, fee)
			}
			return nil, errors.Join(err, tokenErr, feeErr, rollback())
		}
	}

	l.notify.CampaignClosed(domain.CampaignClosed{
		Owner:        updated.Owner,
		ID:           id,
		AmountRouted: sold,
	})
	return &port.SettlementResult{
		CampaignID:     id,
		TokensRouted:   sold,
		CurrencyRouted: currency,
		Fee:            fee,
		SharesMinted:   shares,
	}, nil
}

// Withdraw releases the unsold inventory of a closed campaign to its
// owner and settles the campaign. Effective at most once.
func (l *PresaleLedger) Withdraw(ctx context.Context, caller string, id int64) (decimal.Decimal, error) {
	ctx, release, err := l.guard.enter(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	defer release()

	now := l.clock.Now()
	var leftover decimal.Decimal
	updated, err := l.repo.Update(ctx, id, func(c *domain.Campaign) error {
		if c.Owner != caller {
			return port.ErrNotOwner
		}
		if c.State == domain.StateActive {
			return port.ErrNotClosed
		}
		if c.State == domain.StateSettled || c.AmountLeft.IsZero() {
			return port.ErrNothingLeft
		}
		leftover = c.AmountLeft
		c.AmountLeft = decimal.Zero
		c.State = domain.StateSettled
		c.UpdatedAt = now
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	if err = l.ledger.Transfer(ctx, updated.SaleToken, domain.EscrowAccount, updated.Owner, leftover); err != nil {
		_, rbErr := l.repo.Update(ctx, id, func(c *domain.Campaign) error {
			c.AmountLeft = leftover
			c.State = domain.StateClosed
			return nil
		})
		return decimal.Zero, errors.Join(err, rbErr)
	}

	l.notify.Withdrawn(domain.Withdrawn{
		Owner:  updated.Owner,
		ID:     id,
		Amount: leftover,
	})
	return leftover, nil
}
