package domain

// Config holds user defaults for resolving packages and the launcher.
type Config struct {
	Nixpkgs    string
	AttrPrefix string
	Launcher   string
	Packages   []string
	KeepEnv    []string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Nixpkgs:    DefaultNixpkgs,
		AttrPrefix: DefaultAttrPrefix,
		Launcher:   DefaultLauncherAttr,
	}
}

// AttrPath returns the resolver attribute for a package name, e.g. "pkgs.hello".
func (c *Config) AttrPath(name string) string {
	if c.AttrPrefix == "" {
		return name
	}
	return c.AttrPrefix + "." + name
}

// AttrPaths maps AttrPath over names.
func (c *Config) AttrPaths(names []string) []string {
	attrs := make([]string, len(names))
	for i, name := range names {
		attrs[i] = c.AttrPath(name)
	}
	return attrs
}
