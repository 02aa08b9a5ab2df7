//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
)

// MaterializeCall records a single invocation of Materialize.
type MaterializeCall struct {
	RepoPath string
	Worktree string
	Ref      string
}

// SpyTreeRepository implements repositories.TreeRepository as a configurable spy.
// It writes Files (relative path -> content) into the worktree, then returns
// MaterializeErr. Files are written even when an error is configured, so tests
// can check that a partially populated scratch directory is still removed.
type SpyTreeRepository struct {
	BackendName    string
	Files          map[string]string
	MaterializeErr error
	// spy: calls received
	Calls []MaterializeCall
}

var _ repositories.TreeRepository = (*SpyTreeRepository)(nil)

func (s *SpyTreeRepository) Name() string {
	if s.BackendName == "" {
		return "spy"
	}
	return s.BackendName
}

func (s *SpyTreeRepository) Materialize(
	_ context.Context,
	repoPath, worktree, ref string,
) error {
	s.Calls = append(s.Calls, MaterializeCall{RepoPath: repoPath, Worktree: worktree, Ref: ref})
	for name, content := range s.Files {
		fullPath := filepath.Join(worktree, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return s.MaterializeErr
}
