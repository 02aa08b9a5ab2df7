package billyfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
)

// FileLister walks a directory through a go-billy filesystem rooted at it.
type FileLister struct{}

var _ repositories.FileLister = (*FileLister)(nil)

// NewFileLister creates a new FileLister.
func NewFileLister() *FileLister {
	return &FileLister{}
}

// ListFiles returns every non-directory entry below root (symlinks are listed,
// not followed), relative to root and sorted.
func (it *FileLister) ListFiles(ctx context.Context, root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", root, err)
	}

	files := []string{}
	err := util.Walk(osfs.New(root), ".", func(name string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() {
			return nil
		}
		files = append(files, filepath.ToSlash(name))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}

	slices.Sort(files)
	return files, nil
}
