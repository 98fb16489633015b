package config

import (
	"os"

	"github.com/aalvaropc/djbhash/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace marker and configuration file.
const FileName = "djbhash.yaml"

// Load reads a djbhash.yaml file. A missing file yields defaults with a
// KindNotFound error so callers can decide whether that matters.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse decodes YAML bytes. path is used for error context only.
func Parse(path string, b []byte) (domain.Config, error) {
	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return MapConfig(path, dto)
}
