package duty

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/yourname/duty-bot/internal/domain"
	"github.com/yourname/duty-bot/internal/ledger"
)

// Options tunes the reminder loop. Zero values take the defaults below.
type Options struct {
	MinInterval   time.Duration // shortest wait before a reminder
	MaxInterval   time.Duration // longest wait before a reminder
	RespondWindow time.Duration // how long the user has to answer
}

func (o Options) withDefaults() Options {
	if o.MinInterval <= 0 {
		o.MinInterval = 20 * time.Minute
	}
	if o.MaxInterval <= 0 {
		o.MaxInterval = 30 * time.Minute
	}
	if o.MaxInterval < o.MinInterval {
		o.MaxInterval = o.MinInterval
	}
	if o.RespondWindow <= 0 {
		o.RespondWindow = 2 * time.Minute
	}
	return o
}

// Summary describes a finished duty session.
type Summary struct {
	UserID    int64
	EndedAt   time.Time
	Duration  time.Duration
	Earned    int64
	Continues int
	Auto      bool
}

type reminderHandle struct {
	gen    uint64
	cancel context.CancelFunc
}

// Manager owns the active-session table and the reminder handle per
// user. All table mutations happen under one mutex; the reminder loops
// themselves run as independent goroutines and call back in through
// Continue/End.
type Manager struct {
	mu        sync.Mutex
	sessions  map[int64]*domain.Session
	reminders map[int64]*reminderHandle
	gen       uint64

	base     context.Context
	ledger   *ledger.Ledger
	notifier Notifier
	opts     Options

	now func() time.Time
}

func NewManager(ctx context.Context, n Notifier, l *ledger.Ledger, opts Options) *Manager {
	return &Manager{
		sessions:  make(map[int64]*domain.Session),
		reminders: make(map[int64]*reminderHandle),
		base:      ctx,
		ledger:    l,
		notifier:  n,
		opts:      opts.withDefaults(),
		now:       time.Now,
	}
}

// Start opens a duty session for the user and spawns its reminder loop.
func (m *Manager) Start(userID int64) error {
	m.mu.Lock()
	if _, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return ErrAlreadyOnDuty
	}
	s := &domain.Session{UserID: userID, StartTime: m.now()}
	m.sessions[userID] = s
	m.spawnReminderLocked(userID)
	m.mu.Unlock()

	m.notifier.SendEvent(Event{Kind: EventDutyStarted, UserID: userID, At: s.StartTime})
	return nil
}

// Continue confirms the user is still present: bumps the counter and
// replaces the reminder loop. Cancel-then-spawn happens under the lock
// so there is never a moment with two live loops for one user.
func (m *Manager) Continue(userID int64) error {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return ErrNotOnDuty
	}
	s.Continues++
	n := s.Continues
	m.cancelReminderLocked(userID)
	m.spawnReminderLocked(userID)
	m.mu.Unlock()

	m.notifier.SendEvent(Event{Kind: EventContinued, UserID: userID, At: m.now(), Continues: n})
	return nil
}

// End closes the session, credits earned points and persists the
// ledger. auto marks ends triggered by timeout, delivery failure or
// forceEnd rather than the user. A ledger write failure does not keep
// the session open; the error is logged and returned.
func (m *Manager) End(userID int64, auto bool) (Summary, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return Summary{}, ErrNotOnDuty
	}
	delete(m.sessions, userID)
	m.cancelReminderLocked(userID)
	m.mu.Unlock()

	end := m.now()
	dur := end.Sub(s.StartTime)
	earned := ledger.EarnedPoints(dur)

	sum := Summary{
		UserID:    userID,
		EndedAt:   end,
		Duration:  dur,
		Earned:    earned,
		Continues: s.Continues,
		Auto:      auto,
	}

	var perr error
	if _, err := m.ledger.Add(m.base, strconv.FormatInt(userID, 10), earned); err != nil {
		perr = fmt.Errorf("credit %d points to %d: %w", earned, userID, err)
		log.Printf("ledger: %v", perr)
	}

	m.notifier.SendEvent(Event{
		Kind:      EventDutyEnded,
		UserID:    userID,
		At:        end,
		Duration:  dur,
		Earned:    earned,
		Continues: sum.Continues,
		Auto:      auto,
	})
	return sum, perr
}

// ForceEnd is the administrative end; callers tolerate ErrNotOnDuty.
func (m *Manager) ForceEnd(userID int64) (Summary, error) {
	return m.End(userID, true)
}

// Active returns a point-in-time copy of all open sessions, ordered by
// start time.
func (m *Manager) Active() []domain.Session {
	m.mu.Lock()
	out := make([]domain.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, *s)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (m *Manager) spawnReminderLocked(userID int64) {
	ctx, cancel := context.WithCancel(m.base)
	m.gen++
	h := &reminderHandle{gen: m.gen, cancel: cancel}
	m.reminders[userID] = h
	go m.remind(ctx, userID, h.gen)
}

func (m *Manager) cancelReminderLocked(userID int64) {
	if h, ok := m.reminders[userID]; ok {
		h.cancel()
		delete(m.reminders, userID)
	}
}

// reminderCurrent reports whether gen is still the live handle for the
// user. A superseded loop that fires late sees false and stops.
func (m *Manager) reminderCurrent(userID int64, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.reminders[userID]
	return ok && h.gen == gen
}
