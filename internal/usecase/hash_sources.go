package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
	ucextract "github.com/aalvaropc/djbhash/internal/usecase/extract"
)

// HashOptions selects the algorithm and salt for a hashing run.
type HashOptions struct {
	Algorithm djb.Algorithm
	Salt      uint64

	// JSONPath, when set, parses each source as JSON and hashes every value
	// the expression selects instead of the raw bytes.
	JSONPath string
}

type HashSources struct {
	opener      ports.SourceOpener
	concurrency int
	log         *slog.Logger
}

type HashOption func(*HashSources)

// WithConcurrency bounds how many sources are read at once.
func WithConcurrency(n int) HashOption {
	return func(uc *HashSources) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) HashOption {
	return func(uc *HashSources) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewHashSources(opener ports.SourceOpener, opts ...HashOption) *HashSources {
	uc := &HashSources{
		opener:      opener,
		concurrency: runtime.GOMAXPROCS(0),
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute hashes every source. Results keep input order; with a JSONPath a
// source contributes one digest per selected value. A source that cannot be
// read yields a digest with Error set and does not stop the others. Only
// cancellation or an invalid algorithm/salt fails the whole run.
func (uc *HashSources) Execute(ctx context.Context, sources []string, opts HashOptions) ([]domain.Digest, error) {
	if _, err := djb.NewWithSalt(opts.Algorithm, opts.Salt); err != nil {
		return nil, &domain.OpError{Op: "hash.execute", Kind: domain.KindInvalidInput, Err: err}
	}

	perSource := make([][]domain.Digest, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, name := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perSource[i] = uc.hashSource(gctx, name, opts)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Digest, 0, len(sources))
	for _, ds := range perSource {
		out = append(out, ds...)
	}
	return out, nil
}

// HashOne hashes a single source's raw bytes.
func (uc *HashSources) HashOne(ctx context.Context, name string, opts HashOptions) domain.Digest {
	d, _ := uc.hashRaw(ctx, name, opts, false)
	return d
}

func (uc *HashSources) hashSource(ctx context.Context, name string, opts HashOptions) []domain.Digest {
	if opts.JSONPath == "" {
		d, _ := uc.hashRaw(ctx, name, opts, false)
		return []domain.Digest{d}
	}

	d, body := uc.hashRaw(ctx, name, opts, true)
	if d.Failed() {
		return []domain.Digest{d}
	}

	values, err := ucextract.Select(body, opts.JSONPath)
	if err != nil {
		uc.log.Warn("hash.jsonpath.failed", "source", name, "expr", opts.JSONPath, "error", err)
		return []domain.Digest{uc.failed(name, opts, err)}
	}

	out := make([]domain.Digest, 0, len(values))
	for i, v := range values {
		src := fmt.Sprintf("%s#%s[%d]", name, opts.JSONPath, i)
		out = append(out, digestBytes(src, []byte(v), opts))
	}
	return out
}

// hashRaw streams the source through the hasher. With keep set the bytes are
// also returned for JSONPath evaluation.
func (uc *HashSources) hashRaw(ctx context.Context, name string, opts HashOptions, keep bool) (domain.Digest, []byte) {
	d, body, err := uc.read(ctx, name, opts, keep)
	if err != nil {
		uc.log.Warn("hash.source.failed", "source", name, "error", err)
		return uc.failed(name, opts, err), nil
	}
	uc.log.Debug("hash.source.done", "source", name, "bytes", d.Bytes, "algorithm", opts.Algorithm)
	return d, body
}

func (uc *HashSources) read(ctx context.Context, name string, opts HashOptions, keep bool) (domain.Digest, []byte, error) {
	h, err := djb.NewWithSalt(opts.Algorithm, opts.Salt)
	if err != nil {
		return domain.Digest{}, nil, &domain.OpError{Op: "hash.read", Kind: domain.KindInvalidInput, Path: name, Err: err}
	}

	rc, err := uc.opener.Open(ctx, name)
	if err != nil {
		return domain.Digest{}, nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	var w io.Writer = h
	if keep {
		w = io.MultiWriter(h, &buf)
	}

	n, err := io.Copy(w, ctxReader{ctx: ctx, r: rc})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Digest{}, nil, ctxErr
		}
		return domain.Digest{}, nil, &domain.OpError{Op: "hash.read", Kind: domain.KindExecution, Path: name, Err: err}
	}

	return domain.Digest{
		Source:    name,
		Algorithm: opts.Algorithm,
		Salt:      opts.Salt,
		Bits:      opts.Algorithm.Bits(),
		Value:     h.Sum64(),
		Bytes:     n,
	}, buf.Bytes(), nil
}

func (uc *HashSources) failed(name string, opts HashOptions, err error) domain.Digest {
	return domain.Digest{
		Source:    name,
		Algorithm: opts.Algorithm,
		Salt:      opts.Salt,
		Bits:      opts.Algorithm.Bits(),
		Error:     err.Error(),
	}
}

// HashStrings hashes literal strings. Sources are the Go-quoted input.
func HashStrings(values []string, opts HashOptions) ([]domain.Digest, error) {
	if _, err := djb.NewWithSalt(opts.Algorithm, opts.Salt); err != nil {
		return nil, &domain.OpError{Op: "hash.strings", Kind: domain.KindInvalidInput, Err: err}
	}
	out := make([]domain.Digest, 0, len(values))
	for _, v := range values {
		out = append(out, digestBytes(strconv.Quote(v), []byte(v), opts))
	}
	return out, nil
}

func digestBytes(src string, data []byte, opts HashOptions) domain.Digest {
	// Algorithm and salt are validated by callers.
	h, _ := djb.NewWithSalt(opts.Algorithm, opts.Salt)
	_, _ = h.Write(data)
	return domain.Digest{
		Source:    src,
		Algorithm: opts.Algorithm,
		Salt:      opts.Salt,
		Bits:      opts.Algorithm.Bits(),
		Value:     h.Sum64(),
		Bytes:     int64(len(data)),
	}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
