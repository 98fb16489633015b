package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug     bool
	workspace string

	closeLog func()
}

func Execute() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree against the given streams. Interrupts cancel
// the command context.
func run(args []string, in io.Reader, out, errOut io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &rootOptions{closeLog: func() {}}
	defer func() { opts.closeLog() }()

	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "djbhash",
		Short:        "Bernstein (djb) hash checksums for files, stdin, URLs and strings",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.closeLog()
			opts.closeLog = setupLogging(opts.workspace, opts.debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .djbhash/logs/djbhash.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		sumCmd(opts),
		checkCmd(opts),
		algosCmd(),
		saltCmd(opts),
		watchCmd(opts),
		manifestsCmd(opts),
		initCmd(),
		tuiCmd(opts),
		versionCmd(),
	)
	return cmd
}
