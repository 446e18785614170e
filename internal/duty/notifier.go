package duty

import (
	"context"
	"time"
)

type EventKind int

const (
	EventDutyStarted EventKind = iota + 1
	EventReminderSent
	EventContinued
	EventDutyEnded
	EventDeliveryFailed
)

// Event is a structured log entry the manager emits on every state
// transition. Duration, Earned, Continues and Auto are only meaningful
// for EventDutyEnded; Err only for EventDeliveryFailed.
type Event struct {
	Kind      EventKind
	UserID    int64
	At        time.Time
	Duration  time.Duration
	Earned    int64
	Continues int
	Auto      bool
	Err       error
}

// Notifier is the transport the manager talks through. SendPrompt must
// deliver the prompt to the user and return a delivery error without
// retrying; answers come back via Prompt.Resolve.
type Notifier interface {
	SendPrompt(ctx context.Context, p *Prompt) error
	SendEvent(e Event)
}
