// Package media talks to the hosted media service. Uploads return a
// stable public URL; deletes take that URL back and are best-effort.
package media

import (
	"context"
	"io"
)

// Uploader is the media store contract.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}
