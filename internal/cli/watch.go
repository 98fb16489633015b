package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/checksumfile"
	"github.com/aalvaropc/djbhash/internal/infra/logger"
	"github.com/aalvaropc/djbhash/internal/infra/watcher"
	"github.com/aalvaropc/djbhash/internal/usecase"
)

func watchCmd(opts *rootOptions) *cobra.Command {
	var algo string
	var salt uint64
	var tag bool
	var debounce time.Duration

	c := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Print a checksum line every time a file changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin())
			if err != nil {
				return err
			}

			hopts, err := hashOptions(cmd, ws.cfg, algo, salt)
			if err != nil {
				return err
			}

			uc := usecase.NewHashSources(ws.opener, usecase.WithLogger(logger.L()))
			hash := func(ctx context.Context, path string) domain.Digest {
				return uc.HashOne(ctx, path, hopts)
			}

			w, err := watcher.New(args, hash,
				watcher.WithDebounce(debounce),
				watcher.WithLogger(logger.L()),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range args {
				printWatchEvent(out, watcher.Event{Path: p, Digest: hash(cmd.Context(), p)}, tag)
			}

			return watchLoop(cmd.Context(), w, out, tag)
		},
	}

	addAlgoFlags(c, &algo, &salt)
	c.Flags().BoolVar(&tag, "tag", false, "Use BSD-style tagged lines")
	c.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "Quiet period before a changed file is re-hashed")
	return c
}

// watchLoop prints events until ctx is canceled, which is a normal exit.
func watchLoop(ctx context.Context, w *watcher.Watcher, out io.Writer, tag bool) error {
	events := make(chan watcher.Event)
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx, events) }()

	for {
		select {
		case ev := <-events:
			printWatchEvent(out, ev, tag)
		case err := <-errCh:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func printWatchEvent(w io.Writer, ev watcher.Event, tag bool) {
	switch {
	case ev.Removed:
		fmt.Fprintf(w, "removed  %s\n", ev.Path)
	case ev.Digest.Failed():
		fmt.Fprintf(w, "error  %s: %s\n", ev.Path, ev.Digest.Error)
	default:
		fmt.Fprintln(w, checksumfile.FormatLine(ev.Digest, tag))
	}
}
