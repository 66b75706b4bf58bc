// Package config provides the configuration loader for subenv.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/subenv/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the config at path. When path is empty the default location is
// used, and a missing default file yields domain.DefaultConfig.
func (l *Loader) Load(path string, env domain.Environ) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigPath(env)
		if path == "" {
			return domain.DefaultConfig(), nil
		}
	}

	var file File
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if !found {
		if explicit {
			notFound := zerr.Wrap(fs.ErrNotExist, domain.ErrConfigReadFailed.Error())
			return nil, zerr.With(notFound, "path", path)
		}
		return domain.DefaultConfig(), nil
	}

	l.Logger.Debug("loaded config from " + path)
	return file.toDomain(), nil
}

func (f *File) toDomain() *domain.Config {
	cfg := domain.DefaultConfig()
	if f.Nixpkgs != "" {
		cfg.Nixpkgs = f.Nixpkgs
	}
	if f.AttrPrefix != nil {
		cfg.AttrPrefix = strings.TrimSuffix(*f.AttrPrefix, ".")
	}
	if f.Launcher != "" {
		cfg.Launcher = f.Launcher
	}
	cfg.Packages = append(cfg.Packages, f.Packages...)
	cfg.KeepEnv = append(cfg.KeepEnv, f.KeepEnv...)
	return cfg
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into target.
// It reports false without error when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath comes from the user or the XDG location
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return false, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}
