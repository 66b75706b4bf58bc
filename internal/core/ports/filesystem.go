package ports

// FileSystem abstracts the filesystem checks made while planning a sandbox.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}
