package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
)

// --- fakes ---

type fakeStore struct {
	refs     []domain.ManifestRef
	manifest domain.Manifest
	loadedID string
}

func (s *fakeStore) SaveManifest(domain.Manifest) (string, error) { return "", nil }

func (s *fakeStore) LoadManifest(id string) (domain.Manifest, error) {
	s.loadedID = id
	return s.manifest, nil
}

func (s *fakeStore) ListManifests() ([]domain.ManifestRef, error) { return s.refs, nil }

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func sized(t *testing.T, deps Deps) model {
	t.Helper()
	m, _ := update(t, newModel(deps), tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

// --- hashing helpers ---

func TestHashAll_KnownValues(t *testing.T) {
	rows := hashAll("Ez", djb.DefaultSalt)
	if len(rows) != len(djb.Algorithms()) {
		t.Fatalf("expected one row per algorithm, got %d", len(rows))
	}

	want := map[djb.Algorithm]uint64{
		djb.AlgX33a:       5862308,
		djb.AlgX33aU32Php: 2153345956,
		djb.AlgX33x:       5861786,
	}
	for _, r := range rows {
		if r.err != nil {
			t.Fatalf("%s: unexpected error %v", r.alg, r.err)
		}
		if v, ok := want[r.alg]; ok && r.value != v {
			t.Fatalf("%s: got %d want %d", r.alg, r.value, v)
		}
	}
}

func TestHashAll_WideSaltFailsOnly32BitRows(t *testing.T) {
	for _, r := range hashAll("x", 1<<40) {
		if r.alg.Bits() == 32 && r.err == nil {
			t.Fatalf("%s: expected salt range error", r.alg)
		}
		if r.alg.Bits() == 64 && r.err != nil {
			t.Fatalf("%s: unexpected error %v", r.alg, r.err)
		}
	}
}

func TestParseSalt(t *testing.T) {
	if v, err := parseSalt("", 7); err != nil || v != 7 {
		t.Fatalf("empty: got %d, %v", v, err)
	}
	if v, err := parseSalt(" 0x1505 ", 7); err != nil || v != 5381 {
		t.Fatalf("hex: got %d, %v", v, err)
	}
	if _, err := parseSalt("abc", 7); err == nil {
		t.Fatalf("expected error for non-numeric salt")
	}
}

// --- model ---

func TestModel_LiveHasherFlow(t *testing.T) {
	m := sized(t, Deps{})

	m, _ = update(t, m, key(tea.KeyEnter))
	if m.scr != screenHasher {
		t.Fatalf("expected hasher screen, got %v", m.scr)
	}

	m, _ = update(t, m, runes("Ez"))
	if got := m.input.Value(); got != "Ez" {
		t.Fatalf("expected input Ez, got %q", got)
	}

	view := m.View()
	for _, want := range []string{"00000000005973a4", "805973a4", "5861786"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	// "q" is text while typing, not quit.
	m, _ = update(t, m, runes("q"))
	if m.scr != screenHasher || m.input.Value() != "Ezq" {
		t.Fatalf("expected Ezq, got %q", m.input.Value())
	}
	m, _ = update(t, m, key(tea.KeyBackspace))

	m, _ = update(t, m, key(tea.KeyDown))
	if m.selectedAlgorithm() != djb.AlgX33aPhp {
		t.Fatalf("expected x33a-php selected, got %s", m.selectedAlgorithm())
	}

	m, _ = update(t, m, key(tea.KeyTab))
	if !m.saltFocus {
		t.Fatalf("expected salt field focused")
	}
	m, _ = update(t, m, runes("5387"))
	if m.input.Value() != "Ez" || m.saltInput.Value() != "5387" {
		t.Fatalf("unexpected fields: input=%q salt=%q", m.input.Value(), m.saltInput.Value())
	}
	if !strings.Contains(m.View(), "5868842") {
		t.Fatalf("expected salted value in view:\n%s", m.View())
	}

	m, _ = update(t, m, key(tea.KeyEsc))
	if m.scr != screenHome {
		t.Fatalf("expected home after esc, got %v", m.scr)
	}
}

func TestModel_DefaultsSelectAlgorithm(t *testing.T) {
	m := newModel(Deps{Defaults: domain.DefaultsConfig{Algorithm: djb.AlgX33xU32, Salt: 5387}})
	if m.selectedAlgorithm() != djb.AlgX33xU32 {
		t.Fatalf("expected x33x-u32, got %s", m.selectedAlgorithm())
	}
	if defaultSalt(m.deps) != 5387 {
		t.Fatalf("expected configured salt")
	}
	if defaultSalt(Deps{}) != djb.DefaultSalt {
		t.Fatalf("expected DefaultSalt without config")
	}
}

func TestModel_ManifestsNeedWorkspace(t *testing.T) {
	m := sized(t, Deps{})
	m.workspaceFound = false

	m, _ = update(t, m, key(tea.KeyDown))
	m, cmd := update(t, m, key(tea.KeyEnter))
	if m.scr != screenHome {
		t.Fatalf("expected to stay home, got %v", m.scr)
	}
	if cmd != nil {
		t.Fatalf("expected no command")
	}
	if !strings.Contains(m.toast, "Workspace not found") {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestModel_BrowseManifests(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	store := &fakeStore{
		refs: []domain.ManifestRef{{ID: "uuid-1", File: "20250102T030405Z_release.json", Name: "release", CreatedAt: created, Entries: 1}},
		manifest: domain.Manifest{
			ID:        "uuid-1",
			Name:      "release",
			CreatedAt: created,
			Algorithm: djb.AlgX33a,
			Salt:      djb.DefaultSalt,
			Entries: []domain.Digest{
				{Source: "a.txt", Algorithm: djb.AlgX33a, Bits: 64, Value: 5862308},
			},
		},
	}
	var openedRoot string
	deps := Deps{OpenStore: func(root string) (ports.ManifestStore, error) {
		openedRoot = root
		return store, nil
	}}

	m := sized(t, deps)
	m.workspaceFound = true
	m.workspaceRoot = "/ws"

	m, _ = update(t, m, key(tea.KeyDown))
	m, cmd := update(t, m, key(tea.KeyEnter))
	if m.scr != screenManifests || cmd == nil {
		t.Fatalf("expected manifests screen with load command")
	}

	m, _ = update(t, m, cmd())
	if openedRoot != "/ws" {
		t.Fatalf("expected store opened at /ws, got %q", openedRoot)
	}
	if len(m.manifests.Items()) != 1 {
		t.Fatalf("expected 1 manifest item, got %d", len(m.manifests.Items()))
	}

	m, cmd = update(t, m, key(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected preview command")
	}
	m, _ = update(t, m, cmd())
	if store.loadedID != "uuid-1" {
		t.Fatalf("expected load by id, got %q", store.loadedID)
	}
	if m.scr != screenManifest {
		t.Fatalf("expected manifest screen, got %v", m.scr)
	}
	if !strings.Contains(m.preview, "00000000005973a4  a.txt") {
		t.Fatalf("unexpected preview:\n%s", m.preview)
	}

	m, _ = update(t, m, key(tea.KeyEsc))
	if m.scr != screenManifests {
		t.Fatalf("expected back to manifests, got %v", m.scr)
	}
}

func TestModel_LoadErrorBecomesToast(t *testing.T) {
	m := sized(t, Deps{})
	err := &domain.OpError{Op: "manifeststore.list", Kind: domain.KindExecution, Err: errors.New("disk")}
	m, _ = update(t, m, manifestsLoadedMsg{err: err})
	if m.toast != "Unexpected error (see logs)" {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestSafeModel_PassesThrough(t *testing.T) {
	s := wrapSafe(sized(t, Deps{}), nil)

	next, _ := s.Update(key(tea.KeyEnter))
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.scr != screenHasher {
		t.Fatalf("expected hasher screen, got %v", sm.m.scr)
	}
	if sm.View() == "" {
		t.Fatalf("expected a view")
	}
}

// --- error UX ---

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&domain.OpError{Op: "manifeststore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Manifest not found"},
		{&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Workspace not found"},
		{&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/ws/djbhash.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at djbhash.yaml line 3"},
		{&domain.OpError{Op: "manifeststore.load", Kind: domain.KindInvalidInput, Err: errors.New("ambiguous")}, "Ambiguous or invalid manifest id"},
		{errors.New("yaml: cannot unmarshal"), "Invalid YAML"},
		{errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("héllo", 3); got != "hél…" {
		t.Fatalf("unexpected clamp: %q", got)
	}
	if got := clampString("abc", 5); got != "abc" {
		t.Fatalf("unexpected clamp: %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Fatalf("unexpected clamp: %q", got)
	}
}
