package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
)

// withScratchDir creates a fresh, uniquely named directory, runs body with its
// path and removes it afterwards, whether body succeeded, failed or panicked.
// A removal failure is joined to the body's error rather than masking it.
func withScratchDir(
	ctx context.Context,
	settings entities.ScratchSettings,
	removeAll func(path string) error,
	body func(dir string) error,
) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	dir, err := os.MkdirTemp(settings.BaseDir, settings.Prefix)
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}

	defer func() {
		if settings.Keep {
			logger.Warnf("Keeping scratch directory %s", dir)
			return
		}
		if removeErr := removeAll(dir); removeErr != nil {
			err = errors.Join(err, fmt.Errorf("%w %s: %w", entities.ErrCleanupFailed, dir, removeErr))
			return
		}
		logger.Debugf("Removed scratch directory %s", dir)
	}()

	return body(dir)
}
