package ports

import (
	"context"

	"go.trai.ch/subenv/internal/core/domain"
)

// PackageResolver realises packages and computes their runtime closures.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PackageResolver interface {
	// Build realises the given attributes of the source expression in a single
	// resolver call and returns their output store paths in resolution order.
	Build(ctx context.Context, source string, attrs []string) ([]domain.StorePath, error)

	// Requisites returns the transitive runtime closure of paths, the paths
	// themselves included.
	Requisites(ctx context.Context, paths []domain.StorePath) ([]domain.StorePath, error)
}
