package repositories

import "context"

// FileLister enumerates the files below a directory.
type FileLister interface {
	// ListFiles returns every file under root as a slash-separated path
	// relative to root, sorted. Directories are not included.
	ListFiles(ctx context.Context, root string) ([]string, error)
}
