package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/vango-dev/markup/pkg/doc"
)

// Store is a destination for rendered documents.
type Store interface {
	// Put writes one object. key is a path-like identifier such as
	// "index.html".
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}

// Page publishes a rendered document to the store under the given key.
func Page(ctx context.Context, store Store, key string, page *doc.Page, minimize bool) error {
	var buf bytes.Buffer
	if err := page.Render(&buf, minimize); err != nil {
		return fmt.Errorf("rendering %s: %w", key, err)
	}
	if err := store.Put(ctx, key, "text/html; charset=utf-8", &buf); err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}
