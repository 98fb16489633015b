package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
)

// Stdin is the source name that reads standard input.
const Stdin = "-"

// Opener resolves source names to readers.
//
// Standard input is read once, on the first Open("-"), and every open of "-"
// gets its own reader over those bytes, so one run may list "-" many times
// and hash it concurrently.
type Opener struct {
	stdin  io.Reader
	client *http.Client

	stdinOnce sync.Once
	stdinBuf  []byte
	stdinErr  error
}

type Option func(*Opener)

// WithStdin replaces os.Stdin, mostly for tests.
func WithStdin(r io.Reader) Option {
	return func(o *Opener) { o.stdin = r }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *Opener) {
		if c != nil {
			o.client = c
		}
	}
}

func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		stdin:  os.Stdin,
		client: NewClient(DefaultClientConfig()),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.SourceOpener = (*Opener)(nil)

func (o *Opener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	switch {
	case name == Stdin:
		return o.openStdin()
	case IsURL(name):
		return o.openURL(ctx, name)
	default:
		return openFile(name)
	}
}

func (o *Opener) openStdin() (io.ReadCloser, error) {
	o.stdinOnce.Do(func() {
		o.stdinBuf, o.stdinErr = io.ReadAll(o.stdin)
	})
	if o.stdinErr != nil {
		return nil, &domain.OpError{Op: "source.stdin", Kind: domain.KindExecution, Path: Stdin, Err: o.stdinErr}
	}
	return io.NopCloser(bytes.NewReader(o.stdinBuf)), nil
}

// IsURL reports whether name is an http or https URL.
func IsURL(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func openFile(name string) (io.ReadCloser, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.OpError{
			Op:   "source.open",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("empty source name"),
		}
	}

	f, err := os.Open(name)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{Op: "source.open", Kind: kind, Path: name, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &domain.OpError{Op: "source.stat", Kind: domain.KindExecution, Path: name, Err: err}
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &domain.OpError{
			Op:   "source.open",
			Kind: domain.KindInvalidInput,
			Path: name,
			Err:  errors.New("is a directory"),
		}
	}
	return f, nil
}

func (o *Opener) openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.OpError{Op: "source.fetch", Kind: domain.KindInvalidInput, Path: url, Err: err}
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, &domain.OpError{Op: "source.fetch", Kind: domain.KindExecution, Path: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()

		kind := domain.KindExecution
		if resp.StatusCode == http.StatusNotFound {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "source.fetch",
			Kind: kind,
			Path: url,
			Err:  fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return resp.Body, nil
}
