//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	domainRepos "github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/repositories"
	"github.com/rios0rios0/submissiontrigger/test/infrastructure/repositorydoubles"
)

func TestTreeRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return a fresh instance from the registered factory", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewTreeRegistry()
		calls := 0
		registry.Register("spy", func() domainRepos.TreeRepository {
			calls++
			return &repositorydoubles.SpyTreeRepository{BackendName: "spy"}
		})

		// when
		first, err := registry.Get("spy")
		require.NoError(t, err)
		second, err := registry.Get("spy")
		require.NoError(t, err)

		// then
		assert.Equal(t, "spy", first.Name())
		assert.NotSame(t, first, second)
		assert.Equal(t, 2, calls)
	})

	t.Run("should fail for an unknown backend", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewTreeRegistry()

		// when
		tree, err := registry.Get("svn")

		// then
		require.ErrorIs(t, err, entities.ErrUnknownBackend)
		assert.Nil(t, tree)
		assert.Contains(t, err.Error(), "svn")
	})

	t.Run("should list backend names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewTreeRegistry()
		factory := func() domainRepos.TreeRepository { return &repositorydoubles.SpyTreeRepository{} }
		registry.Register("zeta", factory)
		registry.Register("alpha", factory)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"alpha", "zeta"}, names)
	})
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should register both checkout backends", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()

		// when
		require.NoError(t, repositories.RegisterProviders(container))

		// then
		var registry *repositories.TreeRegistry
		require.NoError(t, container.Invoke(func(r *repositories.TreeRegistry) { registry = r }))
		assert.Equal(t, []string{entities.BackendGit, entities.BackendGoGit}, registry.Names())
		tree, err := registry.Get(entities.BackendGoGit)
		require.NoError(t, err)
		assert.Equal(t, entities.BackendGoGit, tree.Name())
	})
}
