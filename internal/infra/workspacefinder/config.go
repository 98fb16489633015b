package workspacefinder

import (
	"path/filepath"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/config"
)

// LoadConfig loads djbhash.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return config.Load(filepath.Join(root, config.FileName))
}
