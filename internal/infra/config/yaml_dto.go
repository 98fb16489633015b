package config

// YAMLConfig mirrors djbhash.yaml. Pointer fields distinguish "unset" from
// zero values so defaults survive partial files.
type YAMLConfig struct {
	Djbhash struct {
		Defaults YAMLDefaults `yaml:"defaults"`
		Paths    YAMLPaths    `yaml:"paths"`
		Store    YAMLStore    `yaml:"store"`
		Fetch    YAMLFetch    `yaml:"fetch"`
	} `yaml:"djbhash"`
}

type YAMLDefaults struct {
	Algorithm string  `yaml:"algorithm"`
	Salt      *uint64 `yaml:"salt"`
	Format    string  `yaml:"format"`
}

type YAMLPaths struct {
	ManifestsDir string `yaml:"manifests_dir"`
}

type YAMLStore struct {
	Index *bool `yaml:"index"`
}

type YAMLFetch struct {
	TimeoutSeconds *int `yaml:"timeout_seconds"`
}
