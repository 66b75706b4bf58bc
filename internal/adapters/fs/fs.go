// Package fs provides filesystem checks backed by the host operating system.
package fs

import (
	"os"

	"go.trai.ch/subenv/internal/core/ports"
)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

var _ ports.FileSystem = (*OSFS)(nil)

// IsDir reports whether path exists and is a directory. Symlinks are followed,
// so a store path whose bin is a link to a directory counts.
func (o *OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
