package nix

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// determinateProfileBin is where Determinate Nix installs its binaries.
// It is outside PATH by default, so it is checked after the PATH lookup.
const determinateProfileBin = "/nix/var/nix/profiles/default/bin"

// findBinary resolves a Nix binary by name, checking the extra search
// directories first, then PATH, then the Determinate Nix profile.
func (r *Resolver) findBinary(name string) (string, error) {
	for _, dir := range r.searchDirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	candidate := filepath.Join(determinateProfileBin, name)
	if isExecutable(candidate) {
		return candidate, nil
	}

	return "", zerr.With(domain.ErrBinaryNotFound, "binary", name)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode()&0o111 != 0
}

// run executes the named binary and returns its stdout. Stderr is streamed to
// r.stderr so build progress stays visible, and is also captured for the error.
func (r *Resolver) run(ctx context.Context, name string, args []string) (string, error) {
	path, err := r.findBinary(name)
	if err != nil {
		return "", err
	}

	r.logger.Debug(name + " " + strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	//nolint:gosec // binary is resolved from trusted locations, args are passed without a shell
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(r.stderr, &stderr)

	if err := cmd.Run(); err != nil {
		runErr := zerr.Wrap(err, domain.ErrResolverFailed.Error())
		runErr = zerr.With(runErr, "command", name)
		runErr = zerr.With(runErr, "stderr", strings.TrimSpace(stderr.String()))

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			runErr = zerr.With(runErr, "exit_code", exitErr.ExitCode())
		}
		return "", runErr
	}

	return stdout.String(), nil
}
