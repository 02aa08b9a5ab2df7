//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/submissiontrigger/internal/domain/commands"
	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
)

// StubTriggerCommand is a stub implementation of commands.Trigger.
type StubTriggerCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastInvocation   entities.Invocation
	LastOpts         commands.TriggerOptions
	// Written is printed to the output on each call.
	Written string
}

var _ commands.Trigger = (*StubTriggerCommand)(nil)

func (s *StubTriggerCommand) Execute(
	_ context.Context,
	invocation entities.Invocation,
	opts commands.TriggerOptions,
) error {
	s.ExecuteCallCount++
	s.LastInvocation = invocation
	s.LastOpts = opts
	if s.Written != "" {
		if _, err := fmt.Fprint(opts.Output, s.Written); err != nil {
			return err
		}
	}
	return s.ExecuteErr
}
