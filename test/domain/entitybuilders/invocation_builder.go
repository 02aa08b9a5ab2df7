//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
)

const (
	defaultRepo   = "/tmp/submissions/0a1b2c"
	defaultUser   = "alice"
	defaultRemote = "203.0.113.7:52144"
	defaultKey    = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIMvJ9l3XqDq0k3n2wN8bQ5r6tY7uI8oP9aS0dF1gH2jK alice@example"
	defaultName   = "homework"
)

// InvocationBuilder helps create test invocations with a fluent interface.
type InvocationBuilder struct {
	*testkit.BaseBuilder
	repo   string
	user   string
	remote string
	key    string
	name   string
	tags   []string
}

// NewInvocationBuilder creates a new invocation builder with sensible defaults.
func NewInvocationBuilder() *InvocationBuilder {
	return &InvocationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		repo:        defaultRepo,
		user:        defaultUser,
		remote:      defaultRemote,
		key:         defaultKey,
		name:        defaultName,
	}
}

// WithRepo sets the repository path.
func (b *InvocationBuilder) WithRepo(repo string) *InvocationBuilder {
	b.repo = repo
	return b
}

// WithUser sets the pushing user.
func (b *InvocationBuilder) WithUser(user string) *InvocationBuilder {
	b.user = user
	return b
}

// WithRemote sets the remote origin.
func (b *InvocationBuilder) WithRemote(remote string) *InvocationBuilder {
	b.remote = remote
	return b
}

// WithKey sets the public key material.
func (b *InvocationBuilder) WithKey(key string) *InvocationBuilder {
	b.key = key
	return b
}

// WithName sets the display name.
func (b *InvocationBuilder) WithName(name string) *InvocationBuilder {
	b.name = name
	return b
}

// WithTags sets the pushed refs.
func (b *InvocationBuilder) WithTags(tags ...string) *InvocationBuilder {
	b.tags = tags
	return b
}

// Build creates the invocation (satisfies testkit.Builder interface).
func (b *InvocationBuilder) Build() interface{} {
	return b.BuildInvocation()
}

// BuildInvocation creates the invocation with a concrete return type.
func (b *InvocationBuilder) BuildInvocation() entities.Invocation {
	return entities.NewInvocation(b.repo, b.user, b.remote, b.key, b.name, b.tags)
}

// Reset clears the builder state, allowing it to be reused.
func (b *InvocationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.repo = defaultRepo
	b.user = defaultUser
	b.remote = defaultRemote
	b.key = defaultKey
	b.name = defaultName
	b.tags = nil
	return b
}

// Clone creates a deep copy of the InvocationBuilder.
func (b *InvocationBuilder) Clone() testkit.Builder {
	return &InvocationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repo:        b.repo,
		user:        b.user,
		remote:      b.remote,
		key:         b.key,
		name:        b.name,
		tags:        slices.Clone(b.tags),
	}
}
