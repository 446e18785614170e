package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "doc.json"))

	_, err := f.ReadDocument(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileWriteRead(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "doc.json"))

	require.NoError(t, f.WriteDocument(ctx, []byte(`{"a":1}`)))

	got, err := f.ReadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// a second write replaces the whole document
	require.NoError(t, f.WriteDocument(ctx, []byte(`{}`)))
	got, err = f.ReadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), got)

	// rename-on-write leaves no temp file behind
	_, err = os.Stat(filepath.Join(dir, "doc.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
