// Package app implements the application layer for subenv.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/subenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// App plans sandbox launches and hands the process over to the launcher.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.PackageResolver
	launcher     ports.Launcher
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.PackageResolver,
	launcher ports.Launcher,
	fs ports.FileSystem,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		launcher:     launcher,
		fs:           fs,
		logger:       log,
	}
}

// Request is one sandbox launch as parsed from the command line.
type Request struct {
	// Packages are attribute names resolved under the configured prefix.
	Packages []string
	// KeepEnv are variables copied from Env into the sandbox.
	KeepEnv []string
	// SetEnv are explicit assignments, applied after KeepEnv.
	SetEnv []domain.EnvVar
	// AddPath entries come first in the sandbox PATH.
	AddPath []string
	// Binds are user mounts. Read-write binds are emitted before read-only ones.
	Binds []domain.Bind
	// Command is the program and its arguments.
	Command []string
	// ConfigPath overrides the default config location when set.
	ConfigPath string
	// Env is the invoking process environment.
	Env domain.Environ
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// DryRun prints the launcher invocation instead of executing it.
	DryRun bool
	// Verbose enables debug logging of resolver calls.
	Verbose bool
	// LogJSON switches log output to JSON records.
	LogJSON bool
	// Stdout receives the dry-run output. It defaults to os.Stdout.
	Stdout io.Writer
}

// Run plans the sandbox for req and replaces the process with the launcher.
// It only returns on failure, or after printing the plan in dry-run mode.
func (a *App) Run(ctx context.Context, req Request, opts RunOptions) error {
	if opts.LogJSON {
		a.logger.SetJSON(true)
	}
	if opts.Verbose {
		a.logger.SetVerbose(true)
	}

	a.logger.Debug("planning sandbox: " + req.String())

	inv, err := a.Plan(ctx, req)
	if err != nil {
		return err
	}

	if opts.DryRun {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := io.WriteString(out, RenderInvocation(inv))
		return err
	}

	return a.launcher.Exec(inv)
}

// Plan resolves packages and the launcher and returns the complete launcher
// invocation for req. It has no side effects besides the resolver calls.
func (a *App) Plan(ctx context.Context, req Request) (*domain.Invocation, error) {
	if len(req.Command) == 0 {
		return nil, domain.ErrNoCommand
	}

	cfg, err := a.configLoader.Load(req.ConfigPath, req.Env)
	if err != nil {
		return nil, err
	}

	home, ok := req.Env.Lookup(domain.HomeVar)
	if !ok {
		return nil, domain.ErrMissingHome
	}

	kept, err := keptVars(req.Env, concat(cfg.KeepEnv, req.KeepEnv))
	if err != nil {
		return nil, err
	}

	// A nix-build without --attr would build the whole package set.
	var direct []domain.StorePath
	if packages := a.dedupPackages(concat(cfg.Packages, req.Packages)); len(packages) > 0 {
		direct, err = a.resolver.Build(ctx, cfg.Nixpkgs, cfg.AttrPaths(packages))
		if err != nil {
			return nil, err
		}
		a.logger.Debug(fmt.Sprintf("resolved %d packages to %d store paths", len(packages), len(direct)))
	}

	launcher, err := a.resolveLauncher(ctx, cfg)
	if err != nil {
		return nil, err
	}

	roots := domain.UniquePaths(append(append([]domain.StorePath{}, direct...), launcher))
	closure, err := a.resolver.Requisites(ctx, roots)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(fmt.Sprintf("closure has %d store paths", len(closure)))

	spec := &domain.SandboxSpec{
		Launcher: launcher,
		Home:     home,
		Closure:  closure,
		Path:     a.sandboxPath(req.AddPath, direct),
		Env:      append(kept, req.SetEnv...),
		Binds:    req.Binds,
		Command:  req.Command,
	}

	return a.launcher.Invocation(spec)
}

func (a *App) resolveLauncher(ctx context.Context, cfg *domain.Config) (domain.StorePath, error) {
	attr := cfg.AttrPath(cfg.Launcher)

	paths, err := a.resolver.Build(ctx, cfg.Nixpkgs, []string{attr})
	if err != nil {
		launchErr := zerr.Wrap(err, domain.ErrLauncherResolutionFailed.Error())
		return "", zerr.With(launchErr, "attr", attr)
	}
	if len(paths) == 0 {
		return "", zerr.With(domain.ErrLauncherResolutionFailed, "attr", attr)
	}

	return paths[0], nil
}

// sandboxPath returns addPath followed by the bin directory of every directly
// requested package that has one.
func (a *App) sandboxPath(addPath []string, direct []domain.StorePath) []string {
	path := make([]string, 0, len(addPath)+len(direct))
	path = append(path, addPath...)
	for _, p := range direct {
		if bin := p.BinDir(); a.fs.IsDir(bin) {
			path = append(path, bin)
		}
	}
	return path
}

// dedupPackages drops repeated package names, keeping the first occurrence.
func (a *App) dedupPackages(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			a.logger.Warn(fmt.Sprintf("package %q requested more than once", name))
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func keptVars(env domain.Environ, keys []string) ([]domain.EnvVar, error) {
	vars := make([]domain.EnvVar, 0, len(keys))
	for _, key := range keys {
		value, ok := env.Lookup(key)
		if !ok {
			return nil, zerr.With(domain.ErrEnvLookupFailed, "key", key)
		}
		vars = append(vars, domain.EnvVar{Key: key, Value: value})
	}
	return vars, nil
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// String renders a request for debug output.
func (r Request) String() string {
	return fmt.Sprintf("packages=[%s] command=[%s]", strings.Join(r.Packages, " "), strings.Join(r.Command, " "))
}
