package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/djbhash/internal/app/template"
	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/ports"
)

// SaveManifest records the successful digests of a run.
type SaveManifest struct {
	store ports.ManifestStore
	now   func() time.Time
}

func NewSaveManifest(store ports.ManifestStore) *SaveManifest {
	return &SaveManifest{store: store, now: time.Now}
}

// Execute persists digests under name and returns the stored reference.
// name may use {{algo}}, {{salt}}, {{date}} and {{count}}. Failed digests are
// left out; a run where every source failed is rejected.
func (uc *SaveManifest) Execute(name string, opts HashOptions, digests []domain.Digest) (string, error) {
	entries := make([]domain.Digest, 0, len(digests))
	for _, d := range digests {
		if d.Failed() {
			continue
		}
		entries = append(entries, d)
	}
	if len(entries) == 0 {
		return "", &domain.OpError{Op: "manifest.save", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}

	now := uc.now().UTC()
	name, err := template.RenderString(strings.TrimSpace(name), map[string]string{
		"algo":  opts.Algorithm.String(),
		"salt":  strconv.FormatUint(opts.Salt, 10),
		"date":  now.Format("20060102"),
		"count": strconv.Itoa(len(entries)),
	})
	if err != nil {
		return "", err
	}
	if name == "" {
		name = opts.Algorithm.String()
	}

	return uc.store.SaveManifest(domain.Manifest{
		Name:      name,
		CreatedAt: now,
		Algorithm: opts.Algorithm,
		Salt:      opts.Salt,
		Entries:   entries,
	})
}
