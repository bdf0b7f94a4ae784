package ports

// Viewer opens finished artifacts for the user.
type Viewer interface {
	// Open opens a file with the platform's default handler.
	Open(path string) error

	// OpenWith opens a file with a specific executable, detached from the
	// calling process.
	OpenWith(executable, path string) error
}
