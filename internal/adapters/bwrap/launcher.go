package bwrap

import (
	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/subenv/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// ExecFunc replaces the current process image. It only returns on failure.
type ExecFunc func(argv0 string, argv []string, envv []string) error

// Launcher builds bubblewrap invocations and execs them.
type Launcher struct {
	exec ExecFunc
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithExecFunc replaces the exec system call, mainly for tests.
func WithExecFunc(fn ExecFunc) Option {
	return func(l *Launcher) {
		l.exec = fn
	}
}

// NewLauncher creates a Launcher that execs with unix.Exec.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{exec: unix.Exec}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.Launcher = (*Launcher)(nil)

// Invocation implements ports.Launcher.
func (l *Launcher) Invocation(spec *domain.SandboxSpec) (*domain.Invocation, error) {
	path, err := Executable(spec.Launcher)
	if err != nil {
		return nil, err
	}

	args, err := Args(spec)
	if err != nil {
		return nil, err
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	argv = append(argv, args...)

	return &domain.Invocation{
		Path: path,
		Argv: argv,
		Env:  []string{},
	}, nil
}

// Exec implements ports.Launcher. On success it never returns.
func (l *Launcher) Exec(inv *domain.Invocation) error {
	env := inv.Env
	if env == nil {
		env = []string{}
	}
	if err := l.exec(inv.Path, inv.Argv, env); err != nil {
		launchErr := zerr.Wrap(err, domain.ErrLaunchFailed.Error())
		return zerr.With(launchErr, "path", inv.Path)
	}
	return nil
}
