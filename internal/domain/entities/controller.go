package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI entry point.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
