package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// File keeps the document in a single file on disk. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn document.
type File struct {
	path string
}

func NewFile(path string) *File { return &File{path: path} }

func (f *File) ReadDocument(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

func (f *File) WriteDocument(ctx context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
