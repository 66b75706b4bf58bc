// Package nix implements the PackageResolver port using the nix-build and nix-store CLIs.
package nix

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/subenv/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	buildBinary = "nix-build"
	storeBinary = "nix-store"
)

// Resolver implements ports.PackageResolver by shelling out to Nix.
type Resolver struct {
	logger     ports.Logger
	searchDirs []string
	stderr     io.Writer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSearchDirs adds directories that are searched for the Nix binaries
// before PATH.
func WithSearchDirs(dirs ...string) Option {
	return func(r *Resolver) {
		r.searchDirs = append(r.searchDirs, dirs...)
	}
}

// WithStderr sets where the resolver's diagnostic output is streamed.
// It defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Resolver) {
		r.stderr = w
	}
}

// NewResolver creates a Resolver backed by the Nix CLI.
func NewResolver(logger ports.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		logger: logger,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build realises every attribute of source with one nix-build call and
// returns the resulting store paths in the order nix-build reports them.
func (r *Resolver) Build(ctx context.Context, source string, attrs []string) ([]domain.StorePath, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	args := make([]string, 0, 3+2*len(attrs))
	args = append(args, source, "--no-build-output", "--no-out-link")
	for _, attr := range attrs {
		args = append(args, "--attr", attr)
	}

	out, err := r.run(ctx, buildBinary, args)
	if err != nil {
		return nil, zerr.With(err, "attrs", strings.Join(attrs, " "))
	}

	return domain.ParseStorePaths(out), nil
}

// Requisites returns the full closure of paths as reported by
// nix-store --query --requisites.
func (r *Resolver) Requisites(ctx context.Context, paths []domain.StorePath) ([]domain.StorePath, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	args := append([]string{"--query", "--requisites"}, domain.PathStrings(paths)...)

	out, err := r.run(ctx, storeBinary, args)
	if err != nil {
		return nil, zerr.With(err, "paths", len(paths))
	}

	return domain.ParseStorePaths(out), nil
}

var _ ports.PackageResolver = (*Resolver)(nil)
