package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewTriggerCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *TriggerCommand) Trigger {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
