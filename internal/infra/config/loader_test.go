package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "djbhash.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Algorithm != djb.AlgX33aU32Php {
		t.Fatalf("expected x33a-u32-php, got %q", cfg.Defaults.Algorithm)
	}
	if cfg.Defaults.Salt != 5387 {
		t.Fatalf("expected salt 5387, got %d", cfg.Defaults.Salt)
	}
	if cfg.Defaults.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Defaults.Format)
	}
	if cfg.Paths.ManifestsDir != filepath.Join("out", "manifests") {
		t.Fatalf("unexpected manifests dir %q", cfg.Paths.ManifestsDir)
	}
	if cfg.Store.Index {
		t.Fatalf("expected index disabled")
	}
	if cfg.Fetch.TimeoutSeconds != 5 {
		t.Fatalf("expected timeout 5, got %d", cfg.Fetch.TimeoutSeconds)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join("testdata", "djbhash_invalid.yaml")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "defaults.algorithm") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if cfg.Defaults.Algorithm != djb.AlgX33a {
		t.Fatalf("expected defaults on missing file")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse("x.yaml", []byte("djbhash: [unclosed"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
