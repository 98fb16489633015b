package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/checksumfile"
	"github.com/aalvaropc/djbhash/internal/infra/logger"
	"github.com/aalvaropc/djbhash/internal/usecase"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	var algo string
	var salt uint64
	var quiet bool

	c := &cobra.Command{
		Use:   "check <checksum-file|->...",
		Short: "Verify sources against checksum lines written by `djbhash sum`",
		Long: "Re-hash every source listed in the checksum files and compare.\n" +
			"--algo applies to untagged lines; tagged lines name their own algorithm.\n" +
			"Relative paths are resolved against the working directory.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin())
			if err != nil {
				return err
			}

			hopts, err := hashOptions(cmd, ws.cfg, algo, salt)
			if err != nil {
				return err
			}

			var entries []domain.CheckEntry
			for _, file := range args {
				rc, err := ws.opener.Open(cmd.Context(), file)
				if err != nil {
					return err
				}
				es, err := checksumfile.Parse(rc, file, hopts.Algorithm)
				_ = rc.Close()
				if err != nil {
					return err
				}
				for i := range es {
					es[i].Salt = hopts.Salt
				}
				entries = append(entries, es...)
			}

			if err := checkSaltFits(entries, hopts.Salt); err != nil {
				return err
			}

			uc := usecase.NewCheckSums(usecase.NewHashSources(ws.opener, usecase.WithLogger(logger.L())))
			results, err := uc.Execute(cmd.Context(), entries)
			if err != nil {
				return err
			}

			sum := printCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, quiet)
			logger.L().Info("check.done", "ok", sum.OK, "mismatch", sum.Mismatch, "missing", sum.Missing, "errors", sum.Errors)

			if sum.Failed() > 0 {
				return &domain.OpError{
					Op:   "check",
					Kind: domain.KindMismatch,
					Err:  fmt.Errorf("%w: %d of %d failed", domain.ErrMismatch, sum.Failed(), len(results)),
				}
			}
			return nil
		},
	}

	addAlgoFlags(c, &algo, &salt)
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print OK for each verified source")
	return c
}

// checkSaltFits rejects a salt that is too wide for any algorithm the entries
// use, so tagged 32-bit lines fail once up front instead of line by line.
func checkSaltFits(entries []domain.CheckEntry, salt uint64) error {
	seen := map[djb.Algorithm]bool{}
	for _, e := range entries {
		if seen[e.Algorithm] {
			continue
		}
		seen[e.Algorithm] = true
		if _, err := djb.NewWithSalt(e.Algorithm, salt); err != nil {
			return fmt.Errorf("--salt: %w (line %d)", err, e.Line)
		}
	}
	return nil
}

func printCheck(w, errW io.Writer, results []domain.CheckResult, quiet bool) domain.CheckSummary {
	for _, r := range results {
		switch r.Status {
		case domain.CheckOK:
			if !quiet {
				fmt.Fprintf(w, "%s: OK\n", r.Entry.Source)
			}
		case domain.CheckMismatch:
			fmt.Fprintf(w, "%s: FAILED\n", r.Entry.Source)
		default:
			fmt.Fprintf(w, "%s: FAILED open or read\n", r.Entry.Source)
			fmt.Fprintf(errW, "djbhash: %s\n", r.Message)
		}
	}

	sum := domain.Summarize(results)
	if sum.Missing+sum.Errors > 0 {
		fmt.Fprintf(errW, "djbhash: WARNING: %d listed source(s) could not be read\n", sum.Missing+sum.Errors)
	}
	if sum.Mismatch > 0 {
		fmt.Fprintf(errW, "djbhash: WARNING: %d computed checksum(s) did NOT match\n", sum.Mismatch)
	}
	return sum
}
