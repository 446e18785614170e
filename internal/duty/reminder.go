package duty

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"
)

// remind is one reminder instance: sleep a random interval, prompt the
// user, then act on the answer. It never loops — a Continue replaces it
// with a fresh instance, every other outcome ends the session.
func (m *Manager) remind(ctx context.Context, userID int64, gen uint64) {
	timer := time.NewTimer(m.interval())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	if !m.reminderCurrent(userID, gen) {
		return
	}

	p := newPrompt(userID, m.opts.RespondWindow)
	if err := m.notifier.SendPrompt(ctx, p); err != nil {
		m.notifier.SendEvent(Event{Kind: EventDeliveryFailed, UserID: userID, At: m.now(), Err: err})
		if _, err := m.End(userID, true); err != nil && !errors.Is(err, ErrNotOnDuty) {
			log.Printf("duty: auto end after failed delivery to %d: %v", userID, err)
		}
		return
	}
	m.notifier.SendEvent(Event{Kind: EventReminderSent, UserID: userID, At: m.now()})

	window := time.NewTimer(p.Window)
	defer window.Stop()

	select {
	case <-ctx.Done():
		p.expire()

	case a := <-p.ch:
		m.act(userID, a)

	case <-window.C:
		// An answer that landed right at the deadline still counts;
		// Resolve already succeeded for it.
		select {
		case a := <-p.ch:
			m.act(userID, a)
		default:
			p.expire()
			if _, err := m.End(userID, true); err != nil && !errors.Is(err, ErrNotOnDuty) {
				log.Printf("duty: auto end for %d: %v", userID, err)
			}
		}
	}
}

func (m *Manager) act(userID int64, a Action) {
	switch a {
	case ActionContinue:
		// Continue cancels this handle and spawns the replacement;
		// nothing more to do in this instance.
		if err := m.Continue(userID); err != nil && !errors.Is(err, ErrNotOnDuty) {
			log.Printf("duty: continue for %d: %v", userID, err)
		}
	case ActionEnd:
		if _, err := m.End(userID, false); err != nil && !errors.Is(err, ErrNotOnDuty) {
			log.Printf("duty: end for %d: %v", userID, err)
		}
	}
}

func (m *Manager) interval() time.Duration {
	min, max := m.opts.MinInterval, m.opts.MaxInterval
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}
