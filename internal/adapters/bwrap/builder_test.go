package bwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/subenv/internal/adapters/bwrap"
	"go.trai.ch/subenv/internal/core/domain"
)

func TestArgs_Order(t *testing.T) {
	spec := &domain.SandboxSpec{
		Launcher: "/nix/store/bw-bubblewrap",
		Home:     "/home/u",
		Closure:  []domain.StorePath{"/nix/store/a-glibc", "/nix/store/b-hello"},
		Path:     []string{"/opt/tools", "/nix/store/b-hello/bin"},
		Env: []domain.EnvVar{
			{Key: "TERM", Value: "xterm"},
			{Key: "FOO", Value: "bar"},
		},
		Binds: []domain.Bind{
			{Source: "/src/ro", Dest: "/ro", ReadOnly: true},
			{Source: "/src/rw", Dest: "/rw"},
		},
		Command: []string{"hello", "--greeting", "hi"},
	}

	args, err := bwrap.Args(spec)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--unshare-all", "--clearenv",
		"--setenv", "HOME", "/home/u",
		"--ro-bind", "/nix/store/a-glibc", "/nix/store/a-glibc",
		"--ro-bind", "/nix/store/b-hello", "/nix/store/b-hello",
		"--setenv", "PATH", "/opt/tools:/nix/store/b-hello/bin",
		"--setenv", "TERM", "xterm",
		"--setenv", "FOO", "bar",
		"--bind", "/src/rw", "/rw",
		"--ro-bind", "/src/ro", "/ro",
		"--",
		"hello", "--greeting", "hi",
	}, args)
}

func TestArgs_EmptyPath(t *testing.T) {
	args, err := bwrap.Args(&domain.SandboxSpec{
		Home:    "/home/u",
		Command: []string{"true"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--unshare-all", "--clearenv",
		"--setenv", "HOME", "/home/u",
		"--setenv", "PATH", "",
		"--", "true",
	}, args)
}

func TestArgs_LaterPathAssignmentIsEmittedLast(t *testing.T) {
	args, err := bwrap.Args(&domain.SandboxSpec{
		Home:    "/home/u",
		Path:    []string{"/nix/store/b-hello/bin"},
		Env:     []domain.EnvVar{{Key: "PATH", Value: "/custom"}},
		Command: []string{"sh"},
	})
	require.NoError(t, err)

	var last string
	for i := 0; i+2 < len(args); i++ {
		if args[i] == "--setenv" && args[i+1] == "PATH" {
			last = args[i+2]
		}
	}
	assert.Equal(t, "/custom", last)
}

func TestArgs_CommandAfterSeparator(t *testing.T) {
	args, err := bwrap.Args(&domain.SandboxSpec{
		Home:    "/home/u",
		Command: []string{"--looks-like-a-flag"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"--", "--looks-like-a-flag"}, args[len(args)-2:])
}

func TestArgs_NoCommand(t *testing.T) {
	_, err := bwrap.Args(&domain.SandboxSpec{Home: "/home/u"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoCommand.Error())
}

func TestExecutable(t *testing.T) {
	path, err := bwrap.Executable("/nix/store/bw-bubblewrap")
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/bw-bubblewrap/bin/bwrap", path)

	_, err = bwrap.Executable("")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLauncherResolutionFailed.Error())
}
