package app_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/subenv/internal/app"
	"go.trai.ch/subenv/internal/core/domain"
)

func TestRenderInvocation(t *testing.T) {
	inv := &domain.Invocation{
		Path: bwrapBinary,
		Argv: []string{
			bwrapBinary,
			"--unshare-all", "--clearenv",
			"--setenv", "HOME", "/home/u",
			"--ro-bind", "/nix/store/h-hello", "/nix/store/h-hello",
			"--setenv", "PATH", "/nix/store/h-hello/bin",
			"--setenv", "GREETING", "hello world",
			"--bind", "/tmp/work", "/work",
			"--", "hello", "--greeting", "it's",
		},
	}

	g := goldie.New(t)
	g.Assert(t, "dry_run", []byte(app.RenderInvocation(inv)))
}

func TestRenderInvocation_Empty(t *testing.T) {
	assert.Empty(t, app.RenderInvocation(&domain.Invocation{}))
}
