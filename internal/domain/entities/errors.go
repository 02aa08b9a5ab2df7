package entities

import "errors"

var (
	ErrInvalidInvocation = errors.New("invalid invocation")
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrUnknownBackend    = errors.New("unknown checkout backend")
	ErrCheckoutFailed    = errors.New("checkout failed")
	ErrListingFailed     = errors.New("listing failed")
	ErrCleanupFailed     = errors.New("failed to remove scratch directory")
)
