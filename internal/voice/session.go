// Package voice implements the voice-entry simulation: a timed mock
// that, after fixed delays, synthesizes one hardcoded transaction for
// user confirmation. There is no real speech processing.
package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"aether/internal/core"
)

const (
	PhaseListening  Phase = "listening"
	PhaseProcessing Phase = "processing"
	PhasePreview    Phase = "preview"
)

const (
	previewTranscript = "Spent 58 dollars at Starbucks for coffee..."
	draftTitle        = "Starbucks"
	draftAmountCents  = -5800
	draftCategory     = "food"
)

var (
	ErrNotFound = errors.New("capture session not found")
	ErrNotReady = errors.New("capture session not ready for confirmation")
)

// Phase is the state a capture session is in, derived from elapsed time.
type Phase string

// Recorder receives the confirmed draft. Satisfied by the transaction
// service.
type Recorder interface {
	Create(ctx context.Context, d core.Draft) (core.Transaction, error)
}

// Config holds the simulated delays and the idle TTL for sessions.
type Config struct {
	ListenDelay  time.Duration
	ProcessDelay time.Duration
	SessionTTL   time.Duration
}

// DefaultConfig mirrors the original capture flow: 3s of listening,
// 1.5s of processing, then the preview.
func DefaultConfig() Config {
	return Config{
		ListenDelay:  3 * time.Second,
		ProcessDelay: 1500 * time.Millisecond,
		SessionTTL:   10 * time.Minute,
	}
}

// State is the externally visible view of a session. Transcript and
// Draft are only populated once the session reaches the preview phase.
type State struct {
	ID         string
	Phase      Phase
	Transcript string
	Draft      *core.Draft
}

type session struct {
	id        string
	startedAt time.Time
}

// Manager owns capture sessions. All mutation happens under one mutex;
// phases are derived from elapsed time rather than driven by timers so
// state can never advance while nobody is looking at it.
type Manager struct {
	cfg      Config
	recorder Recorder
	now      func() time.Time

	mu       sync.Mutex
	nextID   int64
	sessions map[string]*session
}

func NewManager(recorder Recorder, cfg Config) *Manager {
	return NewManagerWithClock(recorder, cfg, time.Now)
}

func NewManagerWithClock(recorder Recorder, cfg Config, now func() time.Time) *Manager {
	return &Manager{
		cfg:      cfg,
		recorder: recorder,
		now:      now,
		sessions: make(map[string]*session),
	}
}

// Start opens a new capture session in the listening phase.
func (m *Manager) Start() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	s := &session{
		id:        fmt.Sprintf("cap-%d", m.nextID),
		startedAt: m.now(),
	}
	m.sessions[s.id] = s
	return m.stateLocked(s)
}

// Get returns the current state of a session.
func (m *Manager) Get(id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return m.stateLocked(s), nil
}

// Confirm hands the previewed draft to the recorder and ends the
// session. Only sessions in the preview phase can be confirmed, and at
// most once: the session is gone afterwards.
func (m *Manager) Confirm(ctx context.Context, id string) (core.Transaction, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return core.Transaction{}, ErrNotFound
	}
	if m.phaseLocked(s) != PhasePreview {
		m.mu.Unlock()
		return core.Transaction{}, ErrNotReady
	}
	delete(m.sessions, id)
	draft := m.draftLocked()
	m.mu.Unlock()

	return m.recorder.Create(ctx, draft)
}

// CleanExpired removes sessions idle past the TTL and returns how many
// were swept. Fits the cache manager's cleanup contract.
func (m *Manager) CleanExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.cfg.SessionTTL)
	removed := 0
	for id, s := range m.sessions {
		if s.startedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) phaseLocked(s *session) Phase {
	elapsed := m.now().Sub(s.startedAt)
	switch {
	case elapsed < m.cfg.ListenDelay:
		return PhaseListening
	case elapsed < m.cfg.ListenDelay+m.cfg.ProcessDelay:
		return PhaseProcessing
	default:
		return PhasePreview
	}
}

func (m *Manager) stateLocked(s *session) State {
	st := State{ID: s.id, Phase: m.phaseLocked(s)}
	if st.Phase == PhasePreview {
		st.Transcript = previewTranscript
		draft := m.draftLocked()
		st.Draft = &draft
	}
	return st
}

func (m *Manager) draftLocked() core.Draft {
	return core.Draft{
		Title:    draftTitle,
		Amount:   core.Money{Cents: draftAmountCents},
		Date:     m.now(),
		Category: draftCategory,
		Type:     core.Expense,
	}
}
