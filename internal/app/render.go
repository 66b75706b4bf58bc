package app

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/subenv/internal/core/domain"
)

// launcherArity is the number of operands taken by each launcher option.
var launcherArity = map[string]int{
	"--unshare-all": 0,
	"--clearenv":    0,
	"--setenv":      2,
	"--bind":        2,
	"--ro-bind":     2,
}

// RenderInvocation renders inv as a shell command, one launcher option per
// line, that reproduces the launch when pasted into a shell.
func RenderInvocation(inv *domain.Invocation) string {
	if len(inv.Argv) == 0 {
		return ""
	}

	lines := []string{shellquote.Join(inv.Argv[0])}
	args := inv.Argv[1:]
	for len(args) > 0 {
		n := 1
		if args[0] == "--" {
			n = len(args)
		} else if arity, ok := launcherArity[args[0]]; ok {
			n = min(1+arity, len(args))
		}
		lines = append(lines, "  "+shellquote.Join(args[:n]...))
		args = args[n:]
	}

	return strings.Join(lines, " \\\n") + "\n"
}
