// Package errors provides error handling conventions for the gitz CLI.
//
// This package defines an ExitError type for CLI exit code handling and
// exit code constants following standard Unix conventions.
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for the user. It supports error unwrapping via [errors.Unwrap]
// and [errors.As]:
//
//	err := gitzerrors.NewUserError(err, "run gitz update to migrate git-z.toml")
//	var exitErr *gitzerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
