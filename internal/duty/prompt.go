package duty

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action is the user's answer to a reminder prompt.
type Action int

const (
	ActionContinue Action = iota + 1
	ActionEnd
)

// Prompt is one reminder instance awaiting a single answer. Exactly one
// Resolve succeeds; everything after that (second press, press after
// the response window) gets ErrPromptDone. A responder who is not the
// prompted user gets ErrNotYourPrompt regardless of state.
type Prompt struct {
	ID     string
	UserID int64
	Window time.Duration

	mu       sync.Mutex
	resolved bool
	ch       chan Action
}

func newPrompt(userID int64, window time.Duration) *Prompt {
	return &Prompt{
		ID:     uuid.NewString(),
		UserID: userID,
		Window: window,
		ch:     make(chan Action, 1),
	}
}

func (p *Prompt) Resolve(actorID int64, a Action) error {
	if actorID != p.UserID {
		return ErrNotYourPrompt
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resolved {
		return ErrPromptDone
	}
	p.resolved = true
	p.ch <- a
	return nil
}

// expire closes the response window: late answers get ErrPromptDone.
func (p *Prompt) expire() {
	p.mu.Lock()
	p.resolved = true
	p.mu.Unlock()
}
