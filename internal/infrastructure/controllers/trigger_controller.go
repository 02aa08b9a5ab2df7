package controllers

import (
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/submissiontrigger/internal/domain/commands"
	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/output"
)

// TriggerController handles the root command invoked by the push daemon.
type TriggerController struct {
	command  commands.Trigger
	lookuper envconfig.Lookuper
}

var _ entities.Controller = (*TriggerController)(nil)

// NewTriggerController creates a new TriggerController.
func NewTriggerController(command commands.Trigger) *TriggerController {
	return &TriggerController{
		command:  command,
		lookuper: envconfig.OsLookuper(),
	}
}

// GetBind returns the Cobra command metadata for the trigger controller.
func (it *TriggerController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "submission-trigger",
		Short: "Report and inspect a repository push",
		Long: `Invoked by the push daemon after a repository received a push.

Prints who pushed what, then checks out the first pushed tag (or, in head
mode, the default ref) into a scratch directory, lists its files and removes
the directory again.

Settings are read from --config (or an auto-detected submission-trigger.yaml),
then from SUBMISSION_TRIGGER_* environment variables, then from flags.`,
	}
}

// AddFlags adds the trigger flags to the given Cobra command.
func (it *TriggerController) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("repo", "", "Path to the repository's storage location")
	flags.String("user", "", "Identifier of the pushing user")
	flags.String("remote", "", "Descriptor of the push's origin")
	flags.String("key", "", "The user's public key material")
	flags.String("name", "", "Display name of the repository")
	flags.String("tags", "", "NUL-delimited list of pushed ref names")

	flags.StringP("config", "c", "", "Path to config file (default: auto-detect)")
	flags.String("mode", "", "When to materialize a tree: tags or head")
	flags.String("backend", "", "Checkout backend: gogit or git")
	flags.Bool("keep", false, "Keep the scratch directory for debugging")
	flags.BoolP("verbose", "v", false, "Enable verbose output")

	for _, name := range []string{"repo", "user", "remote", "key", "name"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// Execute runs the trigger for the parsed flags.
func (it *TriggerController) Execute(cmd *cobra.Command, _ []string) (err error) {
	ctx := cmd.Context()
	flags := cmd.Flags()

	if verbose, _ := flags.GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := it.loadSettings(cmd)
	if err != nil {
		return err
	}

	repo, _ := flags.GetString("repo")
	user, _ := flags.GetString("user")
	remote, _ := flags.GetString("remote")
	key, _ := flags.GetString("key")
	name, _ := flags.GetString("name")
	rawTags, _ := flags.GetString("tags")
	invocation := entities.NewInvocation(repo, user, remote, key, name, entities.ParseTags(rawTags))

	out, err := output.NewWriter(cmd.OutOrStdout(), settings.Output.Buffering, settings.Output.Encoding)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to flush output: %w", closeErr))
		}
	}()

	return it.command.Execute(ctx, invocation, commands.TriggerOptions{
		Settings: *settings,
		Output:   out,
	})
}

// loadSettings resolves the config file, applies environment and flag
// overrides and validates the result.
func (it *TriggerController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	flags := cmd.Flags()

	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("Using default settings: %v", findErr)
		}
		cfgPath = found
	}
	if cfgPath != "" {
		logger.Debugf("Using config file: %s", cfgPath)
	}

	settings, err := entities.NewSettings(cmd.Context(), cfgPath, it.lookuper)
	if err != nil {
		return nil, err
	}

	if flags.Changed("mode") {
		settings.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("backend") {
		settings.Checkout.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("keep") {
		settings.Scratch.Keep, _ = flags.GetBool("keep")
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}
