package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/djbhash/internal/domain"
)

// CheckSums re-hashes the sources named by checksum entries and compares them
// with the recorded values.
type CheckSums struct {
	hasher *HashSources
}

func NewCheckSums(hasher *HashSources) *CheckSums {
	return &CheckSums{hasher: hasher}
}

// Execute returns one result per entry, in input order. A source that does
// not exist is reported as missing; any other read failure as an error.
func (uc *CheckSums) Execute(ctx context.Context, entries []domain.CheckEntry) ([]domain.CheckResult, error) {
	results := make([]domain.CheckResult, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.hasher.concurrency)

	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.check(gctx, e)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (uc *CheckSums) check(ctx context.Context, e domain.CheckEntry) domain.CheckResult {
	res := domain.CheckResult{Entry: e}

	d, _, err := uc.hasher.read(ctx, e.Source, HashOptions{Algorithm: e.Algorithm, Salt: e.Salt}, false)
	switch {
	case err == nil:
	case domain.IsKind(err, domain.KindNotFound):
		res.Status = domain.CheckMissing
		res.Message = err.Error()
		return res
	default:
		uc.hasher.log.Warn("check.source.failed", "source", e.Source, "error", err)
		res.Status = domain.CheckError
		res.Message = err.Error()
		return res
	}

	res.Actual = d.Value
	if d.Value != e.Expected {
		res.Status = domain.CheckMismatch
		res.Message = fmt.Sprintf("expected %s, got %s",
			domain.FormatHex(e.Expected, e.Algorithm.Bits()),
			domain.FormatHex(d.Value, e.Algorithm.Bits()))
		return res
	}

	res.Status = domain.CheckOK
	return res
}
