package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
)

// Formats lists the output formats accepted in defaults.format and --format.
var Formats = []string{"text", "json"}

// MapConfig applies yc on top of domain.DefaultConfig and validates the result.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	in := yc.Djbhash

	if s := strings.TrimSpace(in.Defaults.Algorithm); s != "" {
		alg, err := djb.ParseAlgorithm(s)
		if err != nil {
			return cfg, invalidField(path, "defaults.algorithm", err.Error())
		}
		cfg.Defaults.Algorithm = alg
	}

	if in.Defaults.Salt != nil {
		cfg.Defaults.Salt = *in.Defaults.Salt
	}
	if _, err := djb.NewWithSalt(cfg.Defaults.Algorithm, cfg.Defaults.Salt); err != nil {
		return cfg, invalidField(path, "defaults.salt", err.Error())
	}

	if f := strings.ToLower(strings.TrimSpace(in.Defaults.Format)); f != "" {
		if err := ValidateFormat(f); err != nil {
			return cfg, invalidField(path, "defaults.format", err.Error())
		}
		cfg.Defaults.Format = f
	}

	if d := strings.TrimSpace(in.Paths.ManifestsDir); d != "" {
		if filepath.IsAbs(d) {
			return cfg, invalidField(path, "paths.manifests_dir", "must be relative to the workspace root")
		}
		cfg.Paths.ManifestsDir = filepath.Clean(d)
	}

	if in.Store.Index != nil {
		cfg.Store.Index = *in.Store.Index
	}

	if in.Fetch.TimeoutSeconds != nil {
		if *in.Fetch.TimeoutSeconds < 0 {
			return cfg, invalidField(path, "fetch.timeout_seconds", "must not be negative")
		}
		cfg.Fetch.TimeoutSeconds = *in.Fetch.TimeoutSeconds
	}

	return cfg, nil
}

// ValidateFormat rejects output formats other than text and json.
func ValidateFormat(f string) error {
	for _, ok := range Formats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (expected %s)", f, strings.Join(Formats, "|"))
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
