package domain

// Bind maps a host path into the sandbox.
type Bind struct {
	Source   string
	Dest     string
	ReadOnly bool
}

// SandboxSpec is everything needed to describe one sandbox launch.
type SandboxSpec struct {
	// Launcher is the store path of the sandbox launcher package.
	Launcher StorePath
	// Home is the invoker's HOME, always set inside the sandbox.
	Home string
	// Closure holds every store path mounted read-only at its own location.
	Closure []StorePath
	// Path is the sandbox PATH, in order.
	Path []string
	// Env holds the kept and explicitly set variables, applied after PATH.
	Env []EnvVar
	// Binds are user mounts, layered after the closure mounts.
	Binds []Bind
	// Command is the program and arguments run inside the sandbox.
	Command []string
}

// Invocation is a fully built launcher call, ready to replace the current process.
type Invocation struct {
	// Path is the launcher executable.
	Path string
	// Argv is the complete argument vector, argv[0] included.
	Argv []string
	// Env is the launcher's own process environment. It is always empty;
	// the sandboxed command's environment is carried in Argv.
	Env []string
}
