package commands

import (
	"fmt"
	"os"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	gitzerrors "github.com/gitzsh/gitz/internal/errors"
	"github.com/gitzsh/gitz/internal/git"
)

// success prints a success message to stdout.
func success(format string, args ...any) {
	color.New(color.FgGreen, color.Bold).Fprintln(os.Stdout, fmt.Sprintf(format, args...))
}

// warning prints a warning message to stderr.
func warning(format string, args ...any) {
	color.New(color.FgYellow, color.Bold).Fprintln(os.Stderr, fmt.Sprintf(format, args...))
}

// errorMsg prints an error message to stderr.
func errorMsg(format string, args ...any) {
	message := "Error: " + uncapitalise(fmt.Sprintf(format, args...))
	color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, message)
}

// hint prints a hint to stderr.
func hint(format string, args ...any) {
	color.New(color.FgBlue).Fprintln(os.Stderr, fmt.Sprintf(format, args...))
}

// uncapitalise lowers the first character of s, so wrapped error messages
// read naturally after the "Error:" prefix.
func uncapitalise(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ensureInWorktree checks the command runs inside a Git worktree, mapping
// the failure to a user-facing error with a suggestion.
func ensureInWorktree() error {
	err := git.EnsureInWorktree()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, git.ErrNotInRepo):
		return gitzerrors.NewUserError(err, "run gitz from inside a Git repository")
	case errors.Is(err, git.ErrNotInWorktree):
		return gitzerrors.NewUserError(err, "run gitz from inside a Git worktree")
	default:
		return gitzerrors.NewSystemError(err, "check that git is installed and on the PATH")
	}
}
