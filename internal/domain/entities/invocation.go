package entities

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// TagSeparator delimits the ref names passed through the --tags flag.
const TagSeparator = "\x00"

//nolint:gochecknoglobals // validator caches struct metadata, one instance per process
var validate = validator.New()

// Invocation is the record of a single trigger run, built once from the
// command line. Fields are opaque strings supplied by the push daemon.
type Invocation struct {
	Repo   string `validate:"required"`
	User   string `validate:"required"`
	Remote string `validate:"required"`
	Key    string `validate:"required"`
	Name   string `validate:"required"`
	tags   []string
}

// NewInvocation creates an Invocation. The tag slice is copied.
func NewInvocation(repo, user, remote, key, name string, tags []string) Invocation {
	return Invocation{
		Repo:   repo,
		User:   user,
		Remote: remote,
		Key:    key,
		Name:   name,
		tags:   slices.Clone(tags),
	}
}

// ParseTags splits a NUL-delimited tag list. Empty elements are dropped, so an
// empty string yields no tags.
func ParseTags(raw string) []string {
	return lo.Compact(strings.Split(raw, TagSeparator))
}

// Tags returns a copy of the pushed refs, in push order.
func (it Invocation) Tags() []string {
	return slices.Clone(it.tags)
}

// HasTags reports whether at least one ref was pushed.
func (it Invocation) HasTags() bool {
	return len(it.tags) > 0
}

// FirstTag returns the first pushed ref.
func (it Invocation) FirstTag() (string, bool) {
	if len(it.tags) == 0 {
		return "", false
	}
	return it.tags[0], true
}

// KeyPrefix returns the first n characters of the public key, or the whole key
// when it is shorter. A negative n also returns the whole key.
func (it Invocation) KeyPrefix(n int) string {
	runes := []rune(it.Key)
	if n < 0 || len(runes) <= n {
		return it.Key
	}
	return string(runes[:n])
}

// Validate checks that every required argument was supplied.
func (it Invocation) Validate() error {
	err := validate.Struct(it)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInvocation, err)
	}

	flags := lo.Map(fieldErrs, func(fieldErr validator.FieldError, _ int) string {
		return "--" + strings.ToLower(fieldErr.Field())
	})
	return fmt.Errorf("%w: missing required argument(s) %s", ErrInvalidInvocation, strings.Join(flags, ", "))
}
