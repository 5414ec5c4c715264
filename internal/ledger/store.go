// Package ledger implements the in-memory transaction store. It owns the
// ordered list of entries exclusively; every other component works on
// read-only copies derived at call time.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"aether/internal/core"
)

// Snapshot captures the derived metrics right after a mutation. Sequence
// numbers are strictly increasing so consumers can recognise stale work.
type Snapshot struct {
	Seq            int64
	Balance        core.Money
	RecentSpending core.Money
}

// Store holds the ordered transaction list, most recent insertion first.
// Entries are immutable once appended and never deleted.
type Store struct {
	mu       sync.Mutex
	starting core.Money
	now      func() time.Time
	nextID   int64
	seq      int64
	entries  []core.Transaction
	subs     []chan Snapshot
}

// New creates an empty store with the given starting capital.
func New(starting core.Money) *Store {
	return NewWithClock(starting, time.Now)
}

// NewWithClock creates a store reading "now" from the given clock. The
// clock only affects the recent-spending window, which is deliberately
// re-evaluated on every call.
func NewWithClock(starting core.Money, now func() time.Time) *Store {
	return &Store{starting: starting, now: now}
}

// Append assigns a fresh identifier, prepends the entry and returns the
// stored record. No validation happens here: the entry boundary is
// responsible for rejecting bad drafts before they reach the store, and
// the amount sign is trusted as given.
func (s *Store) Append(d core.Draft) core.Transaction {
	s.mu.Lock()
	s.nextID++
	t := core.Transaction{
		ID:       fmt.Sprintf("txn-%d", s.nextID),
		Title:    d.Title,
		Amount:   d.Amount,
		Date:     d.Date,
		Category: d.Category,
		Type:     d.Type,
	}
	s.entries = append([]core.Transaction{t}, s.entries...)
	s.seq++
	snap := s.snapshotLocked()
	subs := make([]chan Snapshot, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		publish(ch, snap)
	}
	return t
}

// List returns a copy of all entries, most recent insertion first. The
// order is insertion order, not date order: an entry appended with a past
// date still appears at index 0.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.entries))
	copy(out, s.entries)
	return out
}

// Balance returns starting capital plus the signed sum over all entries,
// recomputed from scratch on every call.
func (s *Store) Balance() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Balance(s.starting, s.entries)
}

// RecentSpending returns the trailing-7-day expense total, with "now"
// read from the store clock at call time.
func (s *Store) RecentSpending() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.RecentSpending(s.entries, s.now())
}

// Snapshot returns the current sequence number and derived metrics.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Seq:            s.seq,
		Balance:        core.Balance(s.starting, s.entries),
		RecentSpending: core.RecentSpending(s.entries, s.now()),
	}
}

// Subscribe registers an observer for post-append snapshots. The channel
// is buffered with latest-wins semantics: a consumer that lags only ever
// sees the newest snapshot, never a backlog.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// publish delivers snap without ever blocking: if the subscriber has not
// consumed the previous snapshot it is dropped in favour of the new one.
func publish(ch chan Snapshot, snap Snapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
