package domain

import "go.trai.ch/zerr"

var (
	// ErrResolverFailed is returned when a package build or a closure query fails.
	ErrResolverFailed = zerr.New("package resolver failed")

	// ErrLauncherResolutionFailed is returned when the sandbox launcher package cannot be built.
	ErrLauncherResolutionFailed = zerr.New("failed to resolve sandbox launcher")

	// ErrEnvLookupFailed is returned when a kept environment variable is not set.
	ErrEnvLookupFailed = zerr.New("environment variable is not set")

	// ErrMissingHome is returned when HOME is absent from the invoking environment.
	ErrMissingHome = zerr.New("HOME is not set")

	// ErrNoCommand is returned when no command to run inside the sandbox was given.
	ErrNoCommand = zerr.New("no command specified")

	// ErrInvalidFlagPair is returned when a two-valued flag is missing its second value.
	ErrInvalidFlagPair = zerr.New("flag needs two arguments")

	// ErrBinaryNotFound is returned when a resolver executable cannot be located.
	ErrBinaryNotFound = zerr.New("executable not found")

	// ErrLaunchFailed is returned when replacing the process with the launcher fails.
	ErrLaunchFailed = zerr.New("failed to exec sandbox launcher")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
