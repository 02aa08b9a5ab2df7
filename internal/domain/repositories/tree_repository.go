package repositories

import "context"

// TreeRepository materializes the tree of a ref stored in a repository into a
// working directory, overwriting whatever is already there.
type TreeRepository interface {
	// Name returns the backend identifier (e.g. "gogit", "git").
	Name() string
	// Materialize writes the tree referenced by ref from the repository at
	// repoPath into worktree.
	Materialize(ctx context.Context, repoPath, worktree, ref string) error
}
