// Package bwrap implements the Launcher port on top of bubblewrap.
package bwrap

import (
	"path/filepath"
	"strings"

	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// builder accumulates bubblewrap arguments in emission order.
type builder struct {
	args []string
}

func (b *builder) add(args ...string) {
	b.args = append(b.args, args...)
}

func (b *builder) setenv(key, value string) {
	b.add("--setenv", key, value)
}

func (b *builder) roBind(src, dst string) {
	b.add("--ro-bind", src, dst)
}

// Args returns the bubblewrap arguments for spec, without argv[0].
//
// The order is fixed: namespace and environment reset, HOME, one read-only
// mount per closure path, PATH, the remaining variables in order, read-write
// binds, read-only binds, and finally the command after "--". Later
// --setenv calls for the same key win, as do later mounts on the same
// destination.
func Args(spec *domain.SandboxSpec) ([]string, error) {
	if len(spec.Command) == 0 {
		return nil, domain.ErrNoCommand
	}

	b := &builder{args: make([]string, 0, 8+3*len(spec.Closure)+3*len(spec.Env)+3*len(spec.Binds)+len(spec.Command))}

	b.add("--unshare-all", "--clearenv")
	b.setenv(domain.HomeVar, spec.Home)

	for _, p := range spec.Closure {
		b.roBind(p.String(), p.String())
	}

	b.setenv(domain.PathVar, strings.Join(spec.Path, string(filepath.ListSeparator)))

	for _, v := range spec.Env {
		b.setenv(v.Key, v.Value)
	}

	for _, bind := range spec.Binds {
		if !bind.ReadOnly {
			b.add("--bind", bind.Source, bind.Dest)
		}
	}
	for _, bind := range spec.Binds {
		if bind.ReadOnly {
			b.roBind(bind.Source, bind.Dest)
		}
	}

	b.add("--")
	b.add(spec.Command...)

	return b.args, nil
}

// Executable returns the bubblewrap binary inside the launcher store path.
func Executable(launcher domain.StorePath) (string, error) {
	if launcher == "" {
		return "", zerr.With(domain.ErrLauncherResolutionFailed, "reason", "empty launcher store path")
	}
	return filepath.Join(launcher.String(), domain.LauncherBinary), nil
}
