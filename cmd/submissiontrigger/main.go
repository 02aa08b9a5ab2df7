package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/controllers"
)

func buildRootCommand(triggerController *controllers.TriggerController) *cobra.Command {
	bind := triggerController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return triggerController.Execute(command, args)
		},
	}

	triggerController.AddFlags(cmd)
	return cmd
}

// exitCode propagates the status of a failed git subprocess; any other
// failure exits with 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// configureLogging points log at out. The push daemon relays stderr to the
// pushing user, so colors are only used when out is a terminal.
func configureLogging(log *logger.Logger, out io.Writer, debug bool) {
	log.SetOutput(out)
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	log.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logger.DebugLevel)
	}
}

func main() {
	// stdout carries the report, so logs go to stderr
	configureLogging(logger.StandardLogger(), os.Stderr, os.Getenv("DEBUG") == "true")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cobraRoot := buildRootCommand(injectTriggerController())

	err := cobraRoot.ExecuteContext(ctx)
	cancel()
	if err != nil {
		logger.Errorf("Error executing 'submission-trigger': %s", err)
		os.Exit(exitCode(err))
	}
}
