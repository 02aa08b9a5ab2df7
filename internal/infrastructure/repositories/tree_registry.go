package repositories

import (
	"fmt"
	"slices"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	domainRepos "github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
)

// TreeFactory is a constructor function that creates a TreeRepository.
type TreeFactory func() domainRepos.TreeRepository

// TreeRegistry manages all registered checkout backends.
type TreeRegistry struct {
	backends map[string]TreeFactory
}

// NewTreeRegistry creates an empty tree registry.
func NewTreeRegistry() *TreeRegistry {
	return &TreeRegistry{
		backends: make(map[string]TreeFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "gogit").
func (r *TreeRegistry) Register(name string, factory TreeFactory) {
	r.backends[name] = factory
}

// Get returns a backend instance for the given name.
func (r *TreeRegistry) Get(name string) (domainRepos.TreeRepository, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Names returns the registered backend names, sorted.
func (r *TreeRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
