package domain

import "path/filepath"

const (
	// AppName is the name used for the config directory.
	AppName = "subenv"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// DefaultNixpkgs is the expression handed to nix-build.
	DefaultNixpkgs = "<nixpkgs>"

	// DefaultAttrPrefix is the attribute root requested packages are looked up under.
	DefaultAttrPrefix = "pkgs"

	// DefaultLauncherAttr is the attribute of the sandbox launcher package.
	DefaultLauncherAttr = "bubblewrap"

	// LauncherBinary is the launcher executable relative to its store path.
	LauncherBinary = "bin/bwrap"

	// BinDirName is the directory scanned in each requested package for PATH entries.
	BinDirName = "bin"

	// HomeVar is the variable always injected into the sandbox.
	HomeVar = "HOME"

	// PathVar is the search path variable built for the sandbox.
	PathVar = "PATH"
)

// DefaultConfigPath returns the default location of the config file.
// XDG_CONFIG_HOME takes precedence over HOME/.config. It returns an empty
// string when neither variable is set.
func DefaultConfigPath(env Environ) string {
	if dir, ok := env.Lookup("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, AppName, ConfigFileName)
	}
	if home, ok := env.Lookup(HomeVar); ok && home != "" {
		return filepath.Join(home, ".config", AppName, ConfigFileName)
	}
	return ""
}
