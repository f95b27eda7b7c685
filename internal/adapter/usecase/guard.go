package usecase

import (
	"context"
	"sync"

	"presale-ledger/internal/core/port"
)

type guardKey struct{}

// campaignGuard serializes mutations of a single campaign and rejects
// re-entrant calls. Serialization uses one mutex per campaign ID.
// Re-entrancy detection rides on the context: the guard tags the context
// with the campaign ID before external ports are invoked, so a port
// implementation that calls back into the engine on the same call chain
// is caught before it can touch the record again.
type campaignGuard struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newCampaignGuard() *campaignGuard {
	return &campaignGuard{locks: make(map[int64]*sync.Mutex)}
}

func (g *campaignGuard) lockFor(id int64) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[id]
	if !ok {
		l = &sync.Mutex{}
		g.locks[id] = l
	}
	return l
}

// enter acquires exclusive access to the campaign. It returns a derived
// context to pass to ports and a release function. port.ErrReentrancy is
// returned when the context already holds the campaign.
func (g *campaignGuard) enter(ctx context.Context, id int64) (context.Context, func(), error) {
	held, _ := ctx.Value(guardKey{}).(map[int64]bool)
	if held[id] {
		return nil, nil, port.ErrReentrancy
	}

	l := g.lockFor(id)
	l.Lock()

	next := make(map[int64]bool, len(held)+1)
	for k := range held {
		next[k] = true
	}
	next[id] = true
	return context.WithValue(ctx, guardKey{}, next), l.Unlock, nil
}
