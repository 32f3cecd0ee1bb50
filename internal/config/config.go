package config

import (
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/gitzsh/gitz/internal/git"
)

// FileName is the name of the configuration file, looked up at the root of
// the enclosing Git repository.
const FileName = "git-z.toml"

// Version is the current version of the configuration schema.
const Version = "0.2"

//go:embed templates/COMMIT_EDITMSG
var defaultCommitTemplate string

// Config is the git-z configuration, current schema.
type Config struct {
	// Version is the version of the configuration schema.
	Version string
	// Types holds the valid commit types and their description, in the
	// order they appear in the configuration file.
	Types Types
	// Scopes is the accepted scopes configuration. When nil, no scope is
	// asked for.
	Scopes *Scopes
	// Ticket is the ticket reference configuration. When nil, no ticket is
	// asked for.
	Ticket *Ticket
	// Templates holds the message templates.
	Templates Templates
}

// Accept is the kind of scopes a configuration accepts.
type Accept string

const (
	// AcceptAny accepts any arbitrary scope.
	AcceptAny Accept = "any"
	// AcceptList accepts scopes from a list.
	AcceptList Accept = "list"
)

// Scopes is the accepted scopes configuration.
type Scopes struct {
	// Accept is the kind of accepted scopes.
	Accept Accept
	// List is the list of valid scopes when Accept is AcceptList.
	List []string
}

// Ticket is the ticket reference configuration.
type Ticket struct {
	// Required reports whether a ticket reference is mandatory.
	Required bool
	// Prefixes is the list of valid ticket prefixes.
	Prefixes []string
}

// Templates holds the message templates.
type Templates struct {
	// Commit is the commit message template.
	Commit string
}

// Default returns the hard-coded default configuration, used when the
// repository has no git-z.toml.
func Default() *Config {
	var types Types
	types.Add("feat", "introduces a new feature")
	types.Add("fix", "patches a bug")

	return &Config{
		Version: Version,
		Types:   types,
		Scopes:  &Scopes{Accept: AcceptAny},
		Ticket:  &Ticket{Required: false, Prefixes: []string{"#"}},
		Templates: Templates{
			Commit: defaultCommitTemplate,
		},
	}
}

// DefaultCommitTemplate returns the default commit message template.
func DefaultCommitTemplate() string {
	return defaultCommitTemplate
}

// FilePath returns the absolute path of the configuration file at the root
// of the enclosing Git repository.
func FilePath() (string, error) {
	root, err := git.RepoRoot()
	if err != nil {
		return "", &ConfigFileError{Err: err}
	}
	return filepath.Join(root, FileName), nil
}

// Load reads the configuration from the repository, falling back to the
// default configuration when there is no configuration file. Out-of-date
// files are converted to the current schema in memory; the file on disk is
// left untouched. The Version field keeps the tag found in the file, so
// callers can detect an out-of-date configuration and suggest an update.
func Load() (*Config, error) {
	path, err := FilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, &ReadError{Err: err}
	}

	return FromTOML(string(data))
}
