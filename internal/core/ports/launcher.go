package ports

import "go.trai.ch/subenv/internal/core/domain"

// Launcher turns a sandbox description into a launcher call and hands the process over to it.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Invocation builds the complete launcher argument vector for spec.
	Invocation(spec *domain.SandboxSpec) (*domain.Invocation, error)

	// Exec replaces the current process with inv. It only returns on failure.
	Exec(inv *domain.Invocation) error
}
