package tui

import "github.com/aalvaropc/djbhash/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type manifestsLoadedMsg struct {
	root string
	refs []domain.ManifestRef
	err  error
}

type manifestPreviewMsg struct {
	id      string
	preview string
	err     error
}
