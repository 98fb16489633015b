package ports

// WorkspaceLocator finds a djbhash workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
