package domain

import "github.com/aalvaropc/djbhash/djb"

// Config represents the djbhash configuration loaded from djbhash.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Store    StoreConfig
	Fetch    FetchConfig
}

type DefaultsConfig struct {
	Algorithm djb.Algorithm
	Salt      uint64
	Format    string
}

type PathsConfig struct {
	ManifestsDir string
}

type StoreConfig struct {
	Index bool
}

type FetchConfig struct {
	TimeoutSeconds int
}

// DefaultConfig provides sane defaults if djbhash.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Algorithm: djb.AlgX33a,
			Salt:      djb.DefaultSalt,
			Format:    "text",
		},
		Paths: PathsConfig{
			ManifestsDir: "manifests",
		},
		Store: StoreConfig{Index: true},
		Fetch: FetchConfig{TimeoutSeconds: 30},
	}
}
