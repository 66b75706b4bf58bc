package domain

import (
	"path/filepath"
	"strings"
)

// StorePath is an immutable path produced by the package resolver for a built artifact.
type StorePath string

// String returns the path as a string.
func (p StorePath) String() string {
	return string(p)
}

// BinDir returns the bin directory inside the store path.
func (p StorePath) BinDir() string {
	return filepath.Join(string(p), BinDirName)
}

// ParseStorePaths splits newline separated resolver output into store paths.
// Blank lines and duplicates are dropped; the first occurrence keeps its position.
func ParseStorePaths(output string) []StorePath {
	lines := strings.Split(output, "\n")
	paths := make([]StorePath, 0, len(lines))
	for _, line := range lines {
		paths = append(paths, StorePath(strings.TrimSpace(line)))
	}
	return UniquePaths(paths)
}

// UniquePaths returns paths without empty entries or duplicates, preserving order.
func UniquePaths(paths []StorePath) []StorePath {
	seen := make(map[StorePath]struct{}, len(paths))
	out := make([]StorePath, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// PathStrings converts store paths to plain strings.
func PathStrings(paths []StorePath) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = string(p)
	}
	return out
}
