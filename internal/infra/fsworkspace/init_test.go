package fsworkspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/config"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertExists(t, filepath.Join(tmp, "djbhash.yaml"))
	assertExists(t, filepath.Join(tmp, "manifests"))
	assertExists(t, filepath.Join(tmp, ".djbhash", "logs"))
	assertExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_TemplateIsValidConfig(t *testing.T) {
	b, err := templatesFS.ReadFile("templates/djbhash.yaml")
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	cfg, err := config.Parse("templates/djbhash.yaml", b)
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template to match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "djbhash.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing djbhash.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read djbhash.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected djbhash.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read djbhash.yaml: %v", err)
	}
	if string(b) == "custom\n" {
		t.Fatalf("expected djbhash.yaml overwritten with force")
	}
}

func assertExists(t *testing.T, p string) {
	t.Helper()
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("expected %s to exist: %v", p, err)
	}
}
