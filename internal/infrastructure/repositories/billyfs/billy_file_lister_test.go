//go:build unit

package billyfs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/repositories/billyfs"
)

func TestFileLister(t *testing.T) {
	t.Parallel()

	t.Run("should list files relative to the root, sorted, without directories", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "dir", "empty"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "dir", "b.txt"), []byte("b"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("h"), 0o644))

		// when
		files, err := billyfs.NewFileLister().ListFiles(context.Background(), root)

		// then
		require.NoError(t, err)
		want := []string{".hidden", "a.txt", "dir/b.txt"}
		if diff := cmp.Diff(want, files); diff != "" {
			t.Errorf("ListFiles() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should list symlinks without following them", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "real"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "real", "x.txt"), []byte("x"), 0o644))
		require.NoError(t, os.Symlink("real", filepath.Join(root, "link")))

		// when
		files, err := billyfs.NewFileLister().ListFiles(context.Background(), root)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"link", "real/x.txt"}, files)
	})

	t.Run("should return an empty list for an empty directory", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()

		// when
		files, err := billyfs.NewFileLister().ListFiles(context.Background(), root)

		// then
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("should fail for a missing root", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "missing")

		// when
		files, err := billyfs.NewFileLister().ListFiles(context.Background(), root)

		// then
		require.Error(t, err)
		assert.Nil(t, files)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := billyfs.NewFileLister().ListFiles(ctx, root)

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}
