package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/internal/infra/fsworkspace"
	"github.com/aalvaropc/djbhash/internal/infra/logger"
	"github.com/aalvaropc/djbhash/internal/infra/manifeststore"
	"github.com/aalvaropc/djbhash/internal/infra/workspacefinder"
	"github.com/aalvaropc/djbhash/internal/ports"
	"github.com/aalvaropc/djbhash/internal/ui/tui"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive live hasher and manifest browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin())
	if err != nil {
		return err
	}

	deps := tui.Deps{
		WorkspaceLocator:     workspacefinder.NewFinder(),
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		OpenStore:            openStore,
		Defaults:             ws.cfg.Defaults,
		Logger:               logger.L(),
		Debug:                opts.debug,
	}
	return tui.Run(deps)
}

func openStore(root string) (ports.ManifestStore, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return manifeststore.NewJSONStore(root, cfg, manifeststore.WithIndex(cfg.Store.Index)), nil
}
