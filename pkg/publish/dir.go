package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DirStore writes rendered documents into a local directory tree.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory is created on
// first Put if it does not exist.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Put implements Store. The content type is ignored; the key's extension
// carries that information on a filesystem.
func (d *DirStore) Put(ctx context.Context, key, _ string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Keys are forward-slash paths; refuse escapes from the root.
	clean := filepath.FromSlash(key)
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid key %q", key)
	}

	path := filepath.Join(d.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directories for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
