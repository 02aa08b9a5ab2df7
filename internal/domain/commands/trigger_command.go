package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	"github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/submissiontrigger/internal/infrastructure/repositories"
)

// Trigger is the interface for the submission trigger command.
type Trigger interface {
	Execute(ctx context.Context, invocation entities.Invocation, opts TriggerOptions) error
}

// TriggerOptions holds runtime options for a single trigger run.
type TriggerOptions struct {
	Settings entities.Settings
	Output   io.Writer
}

// TriggerCommand prints the push report, then materializes the pushed tree in
// a scratch directory and lists its files.
type TriggerCommand struct {
	treeRegistry *infraRepos.TreeRegistry
	lister       repositories.FileLister
	removeAll    func(path string) error
}

// NewTriggerCommand creates a new TriggerCommand.
func NewTriggerCommand(
	treeRegistry *infraRepos.TreeRegistry,
	lister repositories.FileLister,
) *TriggerCommand {
	return &TriggerCommand{
		treeRegistry: treeRegistry,
		lister:       lister,
		removeAll:    os.RemoveAll,
	}
}

// Execute runs the trigger. Invalid arguments fail before anything is written
// or created. The scratch directory is removed on every exit path.
func (it *TriggerCommand) Execute(
	ctx context.Context,
	invocation entities.Invocation,
	opts TriggerOptions,
) error {
	if err := invocation.Validate(); err != nil {
		return err
	}

	if _, err := entities.NewReport(invocation, opts.Settings.Report).WriteTo(opts.Output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	ref, ok := refToMaterialize(invocation, opts.Settings)
	if !ok {
		logger.Debug("No tags pushed, skipping materialization")
		return nil
	}

	tree, err := it.treeRegistry.Get(opts.Settings.Checkout.Backend)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.WithFields(logger.Fields{
		"run":     runID,
		"repo":    invocation.Name,
		"ref":     ref,
		"backend": tree.Name(),
	})

	if _, err = fmt.Fprintln(opts.Output, "You pushed:"); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}

	err = withScratchDir(ctx, opts.Settings.Scratch, it.removeAll, func(dir string) error {
		log.Debugf("Materializing into %s", dir)
		if checkoutErr := tree.Materialize(ctx, invocation.Repo, dir, ref); checkoutErr != nil {
			return fmt.Errorf("%w: %w", entities.ErrCheckoutFailed, checkoutErr)
		}

		files, listErr := it.lister.ListFiles(ctx, dir)
		if listErr != nil {
			return fmt.Errorf("%w: %w", entities.ErrListingFailed, listErr)
		}
		for _, file := range files {
			if _, writeErr := fmt.Fprintf(opts.Output, "./%s\n", file); writeErr != nil {
				return fmt.Errorf("failed to write listing: %w", writeErr)
			}
		}
		log.Debugf("Listed %d file(s)", len(files))
		return nil
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(opts.Output)
	return err
}

// refToMaterialize picks the ref to check out. In tags mode that is the first
// pushed tag, and nothing at all when no tags were pushed; in head mode it is
// always the configured default ref.
func refToMaterialize(invocation entities.Invocation, settings entities.Settings) (string, bool) {
	if settings.Mode == entities.ModeHead {
		return settings.Checkout.DefaultRef, true
	}
	return invocation.FirstTag()
}
