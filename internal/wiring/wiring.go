// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/subenv/internal/adapters/bwrap"
	_ "go.trai.ch/subenv/internal/adapters/config"
	_ "go.trai.ch/subenv/internal/adapters/fs"
	_ "go.trai.ch/subenv/internal/adapters/logger"
	_ "go.trai.ch/subenv/internal/adapters/nix"
	// Register app nodes.
	_ "go.trai.ch/subenv/internal/app"
)
