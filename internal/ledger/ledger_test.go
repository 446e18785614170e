package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/duty-bot/internal/store"
)

func TestEarnedPoints(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want int64
	}{
		{"zero", 0, 0},
		{"negative", -time.Hour, 0},
		{"just under an interval", 239 * time.Second, 0},
		{"exactly one interval", 240 * time.Second, 1},
		{"five minutes", 300 * time.Second, 1},
		{"just under two intervals", 479 * time.Second, 1},
		{"two intervals", 480 * time.Second, 2},
		{"one hour", time.Hour, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EarnedPoints(tt.d))
		})
	}
}

func TestOpenMissingStore(t *testing.T) {
	st := store.NewFile(filepath.Join(t.TempDir(), "points.json"))

	l, err := Open(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, int64(0), l.Get("42"))
	assert.Empty(t, l.Totals())
}

func TestOpenCorruptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(context.Background(), store.NewFile(path))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "points.json")
	st := store.NewFile(path)

	l, err := Open(ctx, st)
	require.NoError(t, err)

	_, err = l.Add(ctx, "100", 7)
	require.NoError(t, err)
	require.NoError(t, l.Set(ctx, "200", 3))

	// a fresh Open against the same file sees identical totals
	l2, err := Open(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, l.Totals(), l2.Totals())
	assert.Equal(t, int64(7), l2.Get("100"))
	assert.Equal(t, int64(3), l2.Get("200"))
}

func TestAddAccumulates(t *testing.T) {
	ctx := context.Background()
	l, err := Open(ctx, store.NewFile(filepath.Join(t.TempDir(), "points.json")))
	require.NoError(t, err)

	total, err := l.Add(ctx, "7", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	total, err = l.Add(ctx, "7", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
}

func TestAddNegativeNotClamped(t *testing.T) {
	ctx := context.Background()
	l, err := Open(ctx, store.NewFile(filepath.Join(t.TempDir(), "points.json")))
	require.NoError(t, err)

	total, err := l.Add(ctx, "7", -10)
	require.NoError(t, err)
	assert.Equal(t, int64(-10), total)
}

func TestSetOverrides(t *testing.T) {
	ctx := context.Background()
	st := store.NewFile(filepath.Join(t.TempDir(), "points.json"))
	l, err := Open(ctx, st)
	require.NoError(t, err)

	_, err = l.Add(ctx, "7", 99)
	require.NoError(t, err)
	require.NoError(t, l.Set(ctx, "7", 0))
	assert.Equal(t, int64(0), l.Get("7"))

	// the reset is persisted, not just in memory
	l2, err := Open(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, int64(0), l2.Get("7"))
}
