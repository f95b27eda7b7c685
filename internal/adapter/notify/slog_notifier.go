package notify

import (
	"log/slog"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// SlogNotifier publishes ledger notifications as structured log records.
// It stands in for an external event bus: every event carries the same
// fields an on-chain observer would index.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier wraps the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) CampaignStarted(e domain.CampaignStarted) {
	n.logger.Info("campaign started",
		slog.String("owner", e.Owner),
		slog.Int64("id", e.ID),
		slog.Int64("start", e.StartTime),
		slog.Int64("end", e.EndTime),
		slog.String("price", e.UnitPrice.String()),
		slog.String("amount", e.Amount.String()),
		slog.String("token", e.SaleToken),
	)
}

func (n *SlogNotifier) Purchased(e domain.Purchased) {
	n.logger.Info("purchased",
		slog.String("receipt", e.ReceiptID),
		slog.String("buyer", e.Buyer),
		slog.String("token_amount", e.TokenAmount.String()),
		slog.String("price", e.UnitPrice.String()),
	)
}

func (n *SlogNotifier) InventoryUpdated(e domain.InventoryUpdated) {
	n.logger.Info("inventory updated",
		slog.Int64("id", e.ID),
		slog.String("token", e.SaleToken),
		slog.String("amount_left", e.AmountLeft.String()),
	)
}

func (n *SlogNotifier) CampaignClosed(e domain.CampaignClosed) {
	n.logger.Info("campaign closed",
		slog.String("owner", e.Owner),
		slog.Int64("id", e.ID),
		slog.String("amount_routed", e.AmountRouted.String()),
	)
}

func (n *SlogNotifier) Withdrawn(e domain.Withdrawn) {
	n.logger.Info("withdrawn",
		slog.String("owner", e.Owner),
		slog.Int64("id", e.ID),
		slog.String("amount", e.Amount.String()),
	)
}

var _ port.Notifier = (*SlogNotifier)(nil)
