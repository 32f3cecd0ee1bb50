package updater

import (
	"fmt"

	"github.com/gitzsh/gitz/internal/config"
)

// DocumentError reports that the configuration could not be parsed into an
// editable document, even though it is loadable as TOML.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("failed to parse %s into an editable document", config.FileName)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// IncorrectVersionError reports that an UpdateFrom method was called for a
// version that does not match the detected one.
type IncorrectVersionError struct {
	// TriedFrom is the version the called method knows how to update from.
	TriedFrom string
	// Actual is the version detected in the configuration.
	Actual string
}

func (e *IncorrectVersionError) Error() string {
	return fmt.Sprintf(
		"tried to update from version %s, but the actual version is %s",
		e.TriedFrom, e.Actual,
	)
}

// WriteError reports an I/O failure while writing the updated
// configuration file.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s", config.FileName)
}

func (e *WriteError) Unwrap() error { return e.Err }
