package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/djb"
)

func algosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algos",
		Short: "List supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBITS\tDESCRIPTION")
			for _, a := range djb.Algorithms() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", a, a.Bits(), a.Describe())
			}
			return tw.Flush()
		},
	}
}
