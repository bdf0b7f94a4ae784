package ports

// FileSystem abstracts the file system operations the playblast performs
// around the capture: pre-flight existence checks and temp-sequence cleanup.
type FileSystem interface {
	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// List returns the paths of entries directly inside a directory that
	// match the glob pattern.
	List(dir, pattern string) ([]string, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
