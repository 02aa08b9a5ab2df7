package repositories

import (
	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	domainRepos "github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/repositories/billyfs"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/repositories/gogit"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register tree registry with all checkout backends
	if err := container.Provide(func() *TreeRegistry {
		reg := NewTreeRegistry()
		reg.Register(entities.BackendGoGit, func() domainRepos.TreeRepository {
			return gogit.NewTreeRepository()
		})
		reg.Register(entities.BackendGit, func() domainRepos.TreeRepository {
			return gitcli.NewTreeRepository()
		})
		return reg
	}); err != nil {
		return err
	}

	// Bind the scratch lister to its interface
	if err := container.Provide(func() domainRepos.FileLister {
		return billyfs.NewFileLister()
	}); err != nil {
		return err
	}

	return nil
}
