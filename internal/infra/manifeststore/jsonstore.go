package manifeststore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
)

const (
	defaultManifestsDir = "manifests"
	indexFile           = "index.jsonl"
)

// JSONStore keeps one JSON file per manifest under <root>/<manifests dir>.
type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: manifests/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator replaces the UUID generator, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ManifestsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultManifestsDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: cfg.Store.Index,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ManifestStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.dirName)
}

// SaveManifest writes m and returns the file stem, which LoadManifest accepts.
// An empty m.ID is filled with a fresh UUID; a zero CreatedAt with now.
func (s *JSONStore) SaveManifest(m domain.Manifest) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "manifeststore.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	toSave := m
	if toSave.ID == "" {
		toSave.ID = s.newID()
	}
	if toSave.CreatedAt.IsZero() {
		toSave.CreatedAt = s.now()
	}
	toSave.CreatedAt = toSave.CreatedAt.UTC()

	slug := slugify(toSave.Name)
	if slug == "" {
		slug = "manifest"
	}

	stem := fmt.Sprintf("%s_%s", toSave.CreatedAt.Format("20060102T150405Z"), slug)
	stem = uniqueStem(dir, stem)
	path := filepath.Join(dir, stem+".json")

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: "manifeststore.marshal", Kind: domain.KindExecution, Path: path, Err: err}
	}

	// tmp then rename so readers never see a partial file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{Op: "manifeststore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{Op: "manifeststore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, domain.ManifestRef{
			ID:        toSave.ID,
			File:      stem + ".json",
			Name:      toSave.Name,
			CreatedAt: toSave.CreatedAt,
			Entries:   len(toSave.Entries),
		})
	}

	return stem, nil
}

func uniqueStem(dir, stem string) string {
	candidate := stem
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate+".json")); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", stem, n)
	}
}

func (s *JSONStore) appendIndex(dir string, ref domain.ManifestRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// LoadManifest accepts a file stem, a manifest UUID, or a unique UUID prefix.
func (s *JSONStore) LoadManifest(ref string) (domain.Manifest, error) {
	ref = strings.TrimSpace(strings.TrimSuffix(ref, ".json"))
	if ref == "" || strings.ContainsAny(ref, `/\`) {
		return domain.Manifest{}, &domain.OpError{
			Op:   "manifeststore.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("invalid manifest reference %q", ref),
		}
	}

	path := filepath.Join(s.dir(), ref+".json")
	if _, err := os.Stat(path); err != nil {
		resolved, rerr := s.resolveByID(ref)
		if rerr != nil {
			return domain.Manifest{}, rerr
		}
		path = filepath.Join(s.dir(), resolved)
	}

	return readManifest(path)
}

func (s *JSONStore) resolveByID(ref string) (string, error) {
	refs, err := s.ListManifests()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, r := range refs {
		if r.ID == ref {
			return r.File, nil
		}
		if strings.HasPrefix(r.ID, ref) {
			matches = append(matches, r.File)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &domain.OpError{
			Op:   "manifeststore.load",
			Kind: domain.KindNotFound,
			Path: ref,
			Err:  domain.ErrNotFound,
		}
	default:
		return "", &domain.OpError{
			Op:   "manifeststore.load",
			Kind: domain.KindInvalidInput,
			Path: ref,
			Err:  fmt.Errorf("ambiguous reference matches %d manifests", len(matches)),
		}
	}
}

func readManifest(path string) (domain.Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, &domain.OpError{Op: "manifeststore.read", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	var m domain.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return domain.Manifest{}, &domain.OpError{Op: "manifeststore.decode", Kind: domain.KindInvalidInput, Path: path, Err: err}
	}
	return m, nil
}

// ListManifests returns saved manifests, newest first. The index is used when
// present; otherwise every JSON file in the directory is decoded.
func (s *JSONStore) ListManifests() ([]domain.ManifestRef, error) {
	dir := s.dir()

	refs, err := readIndex(filepath.Join(dir, indexFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.OpError{Op: "manifeststore.index", Kind: domain.KindExecution, Path: dir, Err: err}
	}
	if err != nil {
		refs, err = scanDir(dir)
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].CreatedAt.After(refs[j].CreatedAt)
	})
	return refs, nil
}

func readIndex(path string) ([]domain.ManifestRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []domain.ManifestRef
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var r domain.ManifestRef
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			// a torn line from an interrupted append
			continue
		}
		out = append(out, r)
	}
	return out, sc.Err()
}

func scanDir(dir string) ([]domain.ManifestRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.ManifestRef{}, nil
		}
		return nil, &domain.OpError{Op: "manifeststore.list", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	out := []domain.ManifestRef{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		m, err := readManifest(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, domain.ManifestRef{
			ID:        m.ID,
			File:      e.Name(),
			Name:      m.Name,
			CreatedAt: m.CreatedAt,
			Entries:   len(m.Entries),
		})
	}
	return out, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
