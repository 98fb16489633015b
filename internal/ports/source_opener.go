package ports

import (
	"context"
	"io"
)

// SourceOpener opens a named input for hashing: a file path, "-" for stdin, or
// an http(s) URL.
type SourceOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
