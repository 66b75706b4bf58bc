package config

// File represents the structure of the subenv config.yaml file.
type File struct {
	Nixpkgs    string   `yaml:"nixpkgs"`
	AttrPrefix *string  `yaml:"attrPrefix"`
	Launcher   string   `yaml:"launcher"`
	Packages   []string `yaml:"packages"`
	KeepEnv    []string `yaml:"keepEnv"`
}
