package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yourname/duty-bot/internal/store"
)

// One point for every full 4 minutes on duty.
const pointInterval = 4 * time.Minute

// Ledger is the persisted mapping from user id (string form) to total
// points. Every mutation rewrites the whole document synchronously;
// a write failure is returned to the caller, never swallowed.
type Ledger struct {
	mu     sync.Mutex
	points map[string]int64
	store  store.DocumentStore
}

// Open loads the ledger once at startup. A missing document yields an
// empty ledger; a document that exists but cannot be decoded is fatal.
func Open(ctx context.Context, st store.DocumentStore) (*Ledger, error) {
	raw, err := st.ReadDocument(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return &Ledger{points: map[string]int64{}, store: st}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}

	var pts map[string]int64
	if err := json.Unmarshal(raw, &pts); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	if pts == nil {
		pts = map[string]int64{}
	}
	return &Ledger{points: pts, store: st}, nil
}

func (l *Ledger) Get(user string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.points[user]
}

// Add adjusts a user's total by delta and persists. Negative deltas are
// allowed and are not clamped at zero. Returns the new total.
func (l *Ledger) Add(ctx context.Context, user string, delta int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := l.points[user] + delta
	l.points[user] = total
	return total, l.saveLocked(ctx)
}

// Set overrides a user's total and persists.
func (l *Ledger) Set(ctx context.Context, user string, value int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.points[user] = value
	return l.saveLocked(ctx)
}

// Totals returns a snapshot copy of the whole mapping.
func (l *Ledger) Totals() map[string]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int64, len(l.points))
	for k, v := range l.points {
		out[k] = v
	}
	return out
}

func (l *Ledger) saveLocked(ctx context.Context) error {
	b, err := json.Marshal(l.points)
	if err != nil {
		return fmt.Errorf("encode points: %w", err)
	}
	if err := l.store.WriteDocument(ctx, b); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	return nil
}

// EarnedPoints converts an on-duty duration into points, truncating
// down. Never negative.
func EarnedPoints(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(d / pointInterval)
}
