package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// PresaleLedger implements port.PresaleUseCase. It orchestrates the
// campaign store, the value-transfer ledger and the liquidity pool while
// enforcing the presale lifecycle: Active -> Closed -> Settled.
//
// Every mutating operation follows checks-effects-interactions: all
// preconditions are validated and the campaign record is updated before
// any external port is called. External calls run with the campaign
// guard held, so an adversarial port cannot re-enter the same campaign's
// mutation path.
type PresaleLedger struct {
	repo   port.PresaleRepository
	ledger port.ValueTransfer
	pool   port.LiquidityPool
	clock  port.Clock
	notify port.Notifier
	admin  string
	guard  *campaignGuard
}

// NewPresaleLedger wires the engine. admin is the only account allowed to
// change the usage fee.
func NewPresaleLedger(repo port.PresaleRepository, ledger port.ValueTransfer, pool port.LiquidityPool, clock port.Clock, notify port.Notifier, admin string) *PresaleLedger {
	return &PresaleLedger{
		repo:   repo,
		ledger: ledger,
		pool:   pool,
		clock:  clock,
		notify: notify,
		admin:  admin,
		guard:  newCampaignGuard(),
	}
}

// StartPresales validates and records a batch of campaigns. The batch is
// rejected whole on any shape error. Inventory is escrowed from caller
// before the records become visible; if an escrow pull fails midway,
// earlier pulls are refunded and no campaign is recorded.
func (l *PresaleLedger) StartPresales(ctx context.Context, caller string, req port.StartPresalesRequest) ([]int64, error) {
	n := len(req.StartTimes)
	if len(req.EndTimes) != n || len(req.UnitPrices) != n || len(req.Amounts) != n || len(req.SaleTokens) != n {
		return nil, port.ErrLengthMismatch
	}
	if n == 0 {
		return nil, nil
	}

	now := l.clock.Now()
	campaigns := make([]*domain.Campaign, 0, n)
	for i := 0; i < n; i++ {
		if req.EndTimes[i] <= req.StartTimes[i] {
			return nil, port.ErrEndBeforeStart
		}
		if !req.Amounts[i].IsPositive() || !domain.IsWholeNonNegative(req.Amounts[i]) {
			return nil, port.ErrZeroAmount
		}
		if !domain.IsWholeNonNegative(req.UnitPrices[i]) {
			return nil, port.ErrInvalidPrice
		}
		campaigns = append(campaigns, &domain.Campaign{
			Owner:       caller,
			StartTime:   req.StartTimes[i],
			EndTime:     req.EndTimes[i],
			UnitPrice:   req.UnitPrices[i],
			TotalAmount: req.Amounts[i],
			AmountLeft:  req.Amounts[i],
			Raised:      decimal.Zero,
			State:       domain.StateActive,
			SaleToken:   req.SaleTokens[i],
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	escrowed := 0
	refund := func() {
		for i := 0; i < escrowed; i++ {
			_ = l.ledger.Transfer(ctx, campaigns[i].SaleToken, domain.EscrowAccount, caller, campaigns[i].TotalAmount)
		}
	}
	for _, c := range campaigns {
		if err := l.ledger.Transfer(ctx, c.SaleToken, caller, domain.EscrowAccount, c.TotalAmount); err != nil {
			refund()
			return nil, err
		}
		escrowed++
	}

	ids, err := l.repo.CreateBatch(ctx, campaigns)
	if err != nil {
		refund()
		return nil, err
	}

	for i, c := range campaigns {
		l.notify.CampaignStarted(domain.CampaignStarted{
			Owner:     c.Owner,
			ID:        ids[i],
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			UnitPrice: c.UnitPrice,
			Amount:    c.TotalAmount,
			SaleToken: c.SaleToken,
		})
	}
	return ids, nil
}

// Presale returns one campaign record.
func (l *PresaleLedger) Presale(ctx context.Context, id int64) (*domain.Campaign, error) {
	return l.repo.Get(ctx, id)
}

// ListPresales returns all campaign records ordered by ID.
func (l *PresaleLedger) ListPresales(ctx context.Context) ([]*domain.Campaign, error) {
	return l.repo.List(ctx)
}

// SetUsageFee stores the protocol fee rate. Admin only.
func (l *PresaleLedger) SetUsageFee(ctx context.Context, caller string, bip int64) error {
	if caller != l.admin {
		return port.ErrNotAdmin
	}
	return l.repo.SetUsageFee(ctx, bip)
}

// UsageFee returns the current protocol fee rate in basis points.
func (l *PresaleLedger) UsageFee(ctx context.Context) (int64, error) {
	return l.repo.UsageFee(ctx)
}

var _ port.PresaleUseCase = (*PresaleLedger)(nil)
