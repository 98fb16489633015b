package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/config"
	"github.com/aalvaropc/djbhash/internal/infra/logger"
	"github.com/aalvaropc/djbhash/internal/infra/manifeststore"
	"github.com/aalvaropc/djbhash/internal/infra/source"
	"github.com/aalvaropc/djbhash/internal/infra/workspacefinder"
	"github.com/aalvaropc/djbhash/internal/ports"
)

// workspaceCtx carries what a command needs. Outside a workspace root is the
// working directory, found is false and cfg holds the defaults.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	opener ports.SourceOpener
	store  ports.ManifestStore
}

func loadWorkspace(workspaceFlag string, stdin io.Reader) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	}

	clientCfg := source.DefaultClientConfig()
	if cfg.Fetch.TimeoutSeconds > 0 {
		clientCfg.Timeout = time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	}

	opener := source.NewOpener(
		source.WithStdin(stdin),
		source.WithHTTPClient(source.NewClient(clientCfg)),
	)

	store := manifeststore.NewJSONStore(root, cfg, manifeststore.WithIndex(cfg.Store.Index))

	return &workspaceCtx{
		root:   root,
		found:  found,
		cfg:    cfg,
		opener: opener,
		store:  store,
	}, nil
}

// resolveWorkspaceRoot honours an explicit --workspace, which must contain a
// djbhash.yaml, and otherwise searches upward from the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		if !fileExists(filepath.Join(abs, config.FileName)) {
			return "", false, fmt.Errorf("no djbhash.yaml in %q (tip: run `djbhash init %s`)", abs, w)
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

func requireWorkspace(ws *workspaceCtx) error {
	if ws.found {
		return nil
	}
	return fmt.Errorf("workspace not found from %q (tip: run `djbhash init`)", ws.root)
}

// setupLogging writes to the workspace log. Outside a workspace nothing is
// logged unless debug is set, in which case the log lands under the working
// directory.
func setupLogging(workspaceFlag string, debug bool) func() {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil || (!found && !debug) {
		return func() {}
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
