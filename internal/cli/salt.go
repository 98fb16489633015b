package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/djb"
)

func saltCmd(opts *rootOptions) *cobra.Command {
	var algo string

	c := &cobra.Command{
		Use:   "salt <n>",
		Short: "Check whether a salt is a good starting value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid salt %q: %w", args[0], err)
			}

			a := djb.AlgX33a
			if algo != "" {
				a, err = djb.ParseAlgorithm(algo)
				if err != nil {
					return err
				}
			} else if ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin()); err == nil {
				a = ws.cfg.Defaults.Algorithm
			}

			if _, err := djb.NewWithSalt(a, n); err != nil {
				return err
			}

			warnings := djb.CheckSalt(a, n)
			if len(warnings) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "salt %d looks good for %s\n", n, a)
				return nil
			}
			for _, msg := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", msg)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&algo, "algo", "a", "", "Algorithm the salt is meant for")
	return c
}
