package tui

import (
	"log/slog"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// OpenStore returns the manifest store of the workspace at root.
	OpenStore func(root string) (ports.ManifestStore, error)

	// Defaults seed the live hasher's salt field.
	Defaults domain.DefaultsConfig

	Logger *slog.Logger
	Debug  bool
}
