package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/usecase"
)

// hashOptions merges --algo/--salt over the workspace defaults.
func hashOptions(cmd *cobra.Command, cfg domain.Config, algo string, salt uint64) (usecase.HashOptions, error) {
	out := usecase.HashOptions{
		Algorithm: cfg.Defaults.Algorithm,
		Salt:      cfg.Defaults.Salt,
	}

	if algo != "" {
		a, err := djb.ParseAlgorithm(algo)
		if err != nil {
			return out, fmt.Errorf("--algo: %w (see `djbhash algos`)", err)
		}
		out.Algorithm = a
	}
	if cmd.Flags().Changed("salt") {
		out.Salt = salt
	}

	if _, err := djb.NewWithSalt(out.Algorithm, out.Salt); err != nil {
		return out, fmt.Errorf("--salt: %w", err)
	}
	return out, nil
}

func addAlgoFlags(cmd *cobra.Command, algo *string, salt *uint64) {
	cmd.Flags().StringVarP(algo, "algo", "a", "", "Algorithm (default from djbhash.yaml, else x33a)")
	cmd.Flags().Uint64Var(salt, "salt", djb.DefaultSalt, "Initial hash state (default from djbhash.yaml, else 5381)")
}

func warnSalt(w io.Writer, opts usecase.HashOptions) {
	for _, msg := range djb.CheckSalt(opts.Algorithm, opts.Salt) {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}
