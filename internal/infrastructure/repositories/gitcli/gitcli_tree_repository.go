package gitcli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	"github.com/rios0rios0/submissiontrigger/internal/domain/repositories"
)

// TreeRepository materializes trees by running
// `git --git-dir <repo> --work-tree <worktree> checkout -f <ref>`.
// Note that git records the checkout in the repository (HEAD and index).
type TreeRepository struct {
	binary string
}

var _ repositories.TreeRepository = (*TreeRepository)(nil)

// NewTreeRepository creates a TreeRepository using the git binary on PATH.
func NewTreeRepository() *TreeRepository {
	return &TreeRepository{binary: "git"}
}

func (it *TreeRepository) Name() string { return entities.BackendGit }

// Materialize checks out ref into worktree. The combined git output is
// captured and attached to the returned error; the *exec.ExitError stays in
// the chain so the process can exit with git's status.
func (it *TreeRepository) Materialize(ctx context.Context, repoPath, worktree, ref string) error {
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("invalid ref %q", ref)
	}

	args := []string{"--git-dir", repoPath, "--work-tree", worktree, "checkout", "-f", ref, "--"}
	logger.Debugf("Running %s %s", it.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, it.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git checkout %s: %w: %s", ref, err, strings.TrimSpace(string(output)))
	}
	return nil
}
