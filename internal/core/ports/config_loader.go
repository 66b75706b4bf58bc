package ports

import "go.trai.ch/subenv/internal/core/domain"

// ConfigLoader defines the interface for loading user defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config at path. An empty path selects the default location
	// derived from env, where a missing file yields the default configuration.
	Load(path string, env domain.Environ) (*domain.Config, error)
}
