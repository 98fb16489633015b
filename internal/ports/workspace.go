package ports

import "github.com/aalvaropc/djbhash/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
