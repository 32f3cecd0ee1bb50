// Package git provides the Git repository lookups git-z relies on: the
// worktree check and the repository root resolution.
package git

import (
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for repository lookups.
var (
	// ErrNotInRepo indicates the command is not run from inside a Git
	// repository.
	ErrNotInRepo = errors.New("not in a Git repository")

	// ErrNotInWorktree indicates the command is run from inside a Git
	// repository, but not from a worktree (e.g. from a bare repository or
	// the .git directory).
	ErrNotInWorktree = errors.New("not inside a Git worktree")
)

// RepoRoot returns the absolute path of the top-level directory of the
// current worktree, as reported by `git rev-parse --show-toplevel`.
func RepoRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.Newf("git rev-parse failed: %s",
				strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", errors.Wrap(err, "running the git command")
	}
	return strings.TrimSpace(string(out)), nil
}

// EnsureInWorktree checks that the command is run from inside a Git
// worktree. It returns ErrNotInRepo or ErrNotInWorktree when it is not, and
// a wrapped error when git itself cannot be run.
func EnsureInWorktree() error {
	out, err := exec.Command("git", "rev-parse", "--is-inside-work-tree").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ErrNotInRepo
		}
		return errors.Wrap(err, "running the git command")
	}
	if strings.TrimSpace(string(out)) != "true" {
		return ErrNotInWorktree
	}
	return nil
}
