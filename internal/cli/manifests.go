package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/internal/infra/checksumfile"
	"github.com/aalvaropc/djbhash/internal/infra/config"
)

func manifestsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "manifests",
		Short: "Browse manifests saved with `djbhash sum --save`",
	}

	c.AddCommand(manifestsListCmd(opts), manifestsShowCmd(opts))
	return c
}

func manifestsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved manifests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := requireWorkspace(ws); err != nil {
				return err
			}

			refs, err := ws.store.ListManifests()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no manifests found)")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CREATED\tNAME\tENTRIES\tFILE")
			for _, r := range refs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.CreatedAt.Format(time.RFC3339), r.Name, r.Entries, r.File)
			}
			return tw.Flush()
		},
	}
}

func manifestsShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	var tag bool

	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved manifest (file stem, UUID or unique prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := requireWorkspace(ws); err != nil {
				return err
			}

			m, err := ws.store.LoadManifest(args[0])
			if err != nil {
				return err
			}

			if format == "" {
				format = ws.cfg.Defaults.Format
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return printDigests(out, cmd.ErrOrStderr(), m.Entries, format, tag)
			}

			fmt.Fprintf(out, "# %s  id=%s  created=%s  algorithm=%s  salt=%d\n",
				m.Name, m.ID, m.CreatedAt.Format(time.RFC3339), m.Algorithm, m.Salt)
			return checksumfile.Write(out, m.Entries, tag)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: text|json (default from djbhash.yaml)")
	c.Flags().BoolVar(&tag, "tag", false, "Use BSD-style tagged lines")
	return c
}
