package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// Buy sells tokenAmount base units from campaign id to buyer. The payment
// must cover tokenAmount * unitPrice / 1e18 (truncated); overpayment is
// accepted and kept in campaign escrow. The record is mutated before the
// ledger is touched; a failed transfer rolls the record back while the
// campaign guard is still held, so no other mutation can interleave with
// the intermediate record. Plain reads are unguarded and may briefly see
// it.
func (l *PresaleLedger) Buy(ctx context.Context, buyer string, id int64, tokenAmount, payment decimal.Decimal) (*port.PurchaseReceipt, error) {
	if !tokenAmount.IsPositive() || !domain.IsWholeNonNegative(tokenAmount) {
		return nil, port.ErrZeroAmount
	}
	if payment.IsNegative() || !domain.IsWholeNonNegative(payment) {
		return nil, port.ErrNotEnoughEther
	}

	ctx, release, err := l.guard.enter(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	now := l.clock.Now()
	updated, err := l.repo.Update(ctx, id, func(c *domain.Campaign) error {
		if c.State != domain.StateActive || c.Ended(now) {
			return port.ErrSaleEnded
		}
		if !c.Started(now) {
			return port.ErrSaleNotStarted
		}
		if tokenAmount.GreaterThan(c.AmountLeft) {
			return port.ErrNotEnoughTokens
		}
		if payment.LessThan(domain.RequiredPayment(tokenAmount, c.UnitPrice)) {
			return port.ErrNotEnoughEther
		}
		c.AmountLeft = c.AmountLeft.Sub(tokenAmount)
		c.Raised = c.Raised.Add(payment)
		c.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	rollback := func() error {
		_, rbErr := l.repo.Update(ctx, id, func(c *domain.Campaign) error {
			c.AmountLeft = c.AmountLeft.Add(tokenAmount)
			c.Raised = c.Raised.Sub(payment)
			return nil
		})
		return rbErr
	}

	// Interactions. Pull the payment first, then deliver the tokens.
	if err = l.ledger.Transfer(ctx, domain.NativeAsset, buyer, domain.EscrowAccount, payment); err != nil {
		return nil, errors.Join(err, rollback())
	}
	if err = l.ledger.Transfer(ctx, updated.SaleToken, domain.EscrowAccount, buyer, tokenAmount); err != nil {
		refundErr := l.ledger.Transfer(ctx, domain.NativeAsset, domain.EscrowAccount, buyer, payment)
		return nil, errors.Join(err, refundErr, rollback())
	}

	receipt := &port.PurchaseReceipt{
		ReceiptID:   uuid.NewString(),
		CampaignID:  id,
		TokenAmount: tokenAmount,
		UnitPrice:   updated.UnitPrice,
		Payment:     payment,
		AmountLeft:  updated.AmountLeft,
	}
	l.notify.Purchased(domain.Purchased{
		ReceiptID:   receipt.ReceiptID,
		Buyer:       buyer,
		TokenAmount: tokenAmount,
		UnitPrice:   updated.UnitPrice,
	})
	l.notify.InventoryUpdated(domain.InventoryUpdated{
		ID:         id,
		SaleToken:  updated.SaleToken,
		AmountLeft: updated.AmountLeft,
	})
	return receipt, nil
}
