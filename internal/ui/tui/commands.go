package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/djbhash/internal/domain"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadManifests(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.OpenStore == nil {
			return manifestsLoadedMsg{root: root, err: errors.New("OpenStore is nil")}
		}
		store, err := deps.OpenStore(root)
		if err != nil {
			return manifestsLoadedMsg{root: root, err: err}
		}

		refs, err := store.ListManifests()
		return manifestsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPreviewManifest(deps Deps, root, id string) tea.Cmd {
	return func() tea.Msg {
		if deps.OpenStore == nil {
			return manifestPreviewMsg{id: id, err: errors.New("OpenStore is nil")}
		}
		store, err := deps.OpenStore(root)
		if err != nil {
			return manifestPreviewMsg{id: id, err: err}
		}

		m, err := store.LoadManifest(id)
		if err != nil {
			return manifestPreviewMsg{id: id, err: err}
		}
		return manifestPreviewMsg{id: id, preview: renderManifest(m)}
	}
}
