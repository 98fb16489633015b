package ports

import "github.com/aalvaropc/djbhash/internal/domain"

// ManifestStore persists manifests of digests.
type ManifestStore interface {
	SaveManifest(m domain.Manifest) (id string, err error)
	LoadManifest(id string) (domain.Manifest, error)
	ListManifests() ([]domain.ManifestRef, error)
}
