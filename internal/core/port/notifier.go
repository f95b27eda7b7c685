package port

import "presale-ledger/internal/core/domain"

// Notifier receives structured notifications emitted by the engine.
// Emission happens after the corresponding state change is durable;
// implementations must not call back into the engine.
type Notifier interface {
	CampaignStarted(e domain.CampaignStarted)
	Purchased(e domain.Purchased)
	InventoryUpdated(e domain.InventoryUpdated)
	CampaignClosed(e domain.CampaignClosed)
	Withdrawn(e domain.Withdrawn)
}
