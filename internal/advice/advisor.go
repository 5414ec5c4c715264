package advice

import (
	"context"
	"sync"

	"aether/internal/core"
	"aether/internal/ledger"
)

// Getter is the provider contract the advisor drives. Satisfied by
// *Provider; tests substitute fakes with controllable timing.
type Getter interface {
	Get(ctx context.Context, balance, recentSpending core.Money) core.FinancialStatus
}

// Advisor maintains the current financial status for the dashboard. A
// refresh is issued whenever the ledger metrics change; while the newest
// call is outstanding the advisor reports pending so the view can show a
// loading placeholder. Figure and message always publish together.
type Advisor struct {
	provider Getter

	mu     sync.Mutex
	newest int64
	status core.FinancialStatus
	ready  bool
}

func NewAdvisor(provider Getter) *Advisor {
	return &Advisor{provider: provider, newest: -1}
}

// Refresh issues a provider call for the given snapshot. Calls are
// tagged with the snapshot sequence, which the ledger assigns under its
// lock: a snapshot older than the newest one seen is ignored outright,
// and a result that resolves after a newer snapshot was issued is
// discarded. A late or reordered response can never overwrite fresher
// advice.
func (a *Advisor) Refresh(ctx context.Context, snap ledger.Snapshot) {
	a.mu.Lock()
	if snap.Seq < a.newest {
		a.mu.Unlock()
		return
	}
	a.newest = snap.Seq
	a.ready = false
	a.mu.Unlock()

	go func() {
		status := a.provider.Get(ctx, snap.Balance, snap.RecentSpending)

		a.mu.Lock()
		defer a.mu.Unlock()
		if snap.Seq != a.newest {
			// Stale: a newer snapshot arrived while this call was in flight.
			return
		}
		a.status = status
		a.ready = true
	}()
}

// Run drives Refresh from a ledger subscription until ctx is cancelled
// or the channel closes.
func (a *Advisor) Run(ctx context.Context, snapshots <-chan ledger.Snapshot) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			a.Refresh(ctx, snap)
		}
	}
}

// Status returns the current advisory status and whether it is ready.
// Not ready means the newest refresh has not resolved yet.
func (a *Advisor) Status() (core.FinancialStatus, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status, a.ready
}
