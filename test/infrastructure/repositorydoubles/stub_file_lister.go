//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
)

// StubFileLister is a stub implementation of repositories.FileLister.
type StubFileLister struct {
	Files   []string
	ListErr error
	// spy: roots that were listed
	Roots []string
}

var _ repositories.FileLister = (*StubFileLister)(nil)

func (s *StubFileLister) ListFiles(_ context.Context, root string) ([]string, error) {
	s.Roots = append(s.Roots, root)
	return s.Files, s.ListErr
}
