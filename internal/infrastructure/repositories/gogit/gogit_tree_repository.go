package gogit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	"github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
)

const dirPerm = 0o755

// TreeRepository materializes trees with go-git. The repository is only read:
// HEAD and the index stay untouched, unlike `git checkout --work-tree`.
type TreeRepository struct{}

var _ repositories.TreeRepository = (*TreeRepository)(nil)

// NewTreeRepository creates a new go-git backed TreeRepository.
func NewTreeRepository() *TreeRepository {
	return &TreeRepository{}
}

func (it *TreeRepository) Name() string { return entities.BackendGoGit }

// Materialize writes every file of ref's tree into worktree.
func (it *TreeRepository) Materialize(ctx context.Context, repoPath, worktree, ref string) error {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository %q: %w", repoPath, err)
	}

	commit, err := resolveCommit(repo, ref)
	if err != nil {
		return err
	}
	logger.Debugf("Resolved %q to commit %s", ref, commit.Hash)

	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("failed to read tree of %s: %w", commit.Hash, err)
	}

	// bound, not chroot: absolute symlink targets must be written verbatim
	target := osfs.New(worktree, osfs.WithBoundOS())
	return tree.Files().ForEach(func(file *object.File) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return writeFile(target, file)
	})
}

// resolveCommit resolves ref to a commit, peeling annotated tags.
func resolveCommit(repo *git.Repository, ref string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", ref, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err == nil {
		return commit, nil
	}

	tag, tagErr := repo.TagObject(*hash)
	if tagErr != nil {
		return nil, fmt.Errorf("%q does not point to a commit: %w", ref, err)
	}
	commit, err = tag.Commit()
	if err != nil {
		return nil, fmt.Errorf("tag %q does not point to a commit: %w", ref, err)
	}
	return commit, nil
}

// writeFile writes a single tree entry, replacing any existing file.
func writeFile(target billy.Filesystem, file *object.File) error {
	if dir := path.Dir(file.Name); dir != "." {
		if err := target.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}
	if err := target.Remove(file.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to replace %q: %w", file.Name, err)
	}

	if file.Mode == filemode.Symlink {
		linkTarget, err := file.Contents()
		if err != nil {
			return fmt.Errorf("failed to read symlink %q: %w", file.Name, err)
		}
		return target.Symlink(linkTarget, file.Name)
	}

	mode, err := file.Mode.ToOSFileMode()
	if err != nil {
		return fmt.Errorf("unsupported mode for %q: %w", file.Name, err)
	}

	reader, err := file.Reader()
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", file.Name, err)
	}
	defer reader.Close()

	dst, err := target.OpenFile(file.Name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", file.Name, err)
	}
	if _, err = io.Copy(dst, reader); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to write %q: %w", file.Name, err)
	}
	return dst.Close()
}
