package usecase

import (
	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute lays out a workspace at root. Existing files are kept unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	if root == "" {
		return &domain.OpError{Op: "workspace.init", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
