// Package updater rewrites out-of-date git-z.toml files in place.
//
// Unlike the config loader, which converts old configurations in memory
// only, the updater edits the configuration file itself: it loads both a
// validated config.Config (for version detection and value introspection)
// and an editable tomledit.Document from the same text, applies the
// migration transform registered for the detected version, and writes the
// document back. Every comment and formatting choice the user made is
// preserved, except where the schema itself moved or re-documented a field.
//
// The updater is deliberately single-hop: each UpdateFrom method bridges
// exactly one source version, because each hop may need fresh decisions
// from the user. Decisions are opaque inputs supplied by the caller; the
// updater never solicits them itself.
package updater

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/gitzsh/gitz/internal/config"
	"github.com/gitzsh/gitz/internal/tomledit"
)

// ErrNoConfigFile indicates there is no configuration file to update.
var ErrNoConfigFile = errors.New("no configuration file")

// AskForTicket is the decision about asking for a ticket reference during
// a migration.
type AskForTicket struct {
	ask     bool
	require bool
}

// Ask returns the decision to ask for a ticket, required or not.
func Ask(require bool) AskForTicket {
	return AskForTicket{ask: true, require: require}
}

// DontAsk is the decision not to ask for a ticket.
var DontAsk = AskForTicket{}

// Updater holds a configuration loaded for update. It exposes read-only
// accessors for deciding which migration to run, and one UpdateFrom method
// per historical version. A successful UpdateFrom consumes the Updater and
// returns an Updated handle; the Updater must not be reused afterwards.
type Updater struct {
	parsedConfig *config.Config
	doc          *tomledit.Document
}

// Updated holds a migrated configuration, ready to be saved. Persisting is
// the only operation: an Updated document cannot be transformed again.
type Updated struct {
	doc *tomledit.Document
}

// Load reads the repository configuration file into an Updater. It returns
// ErrNoConfigFile when the repository has no git-z.toml: unlike the config
// loader, the updater has nothing to do without a file.
func Load() (*Updater, error) {
	path, err := config.FilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoConfigFile
		}
		return nil, &config.ReadError{Err: err}
	}

	return Parse(string(data))
}

// Parse loads an Updater from configuration text. The typed parse runs
// first so that the transforms can assume a valid document of the detected
// version.
func Parse(text string) (*Updater, error) {
	parsedConfig, err := config.FromTOML(text)
	if err != nil {
		return nil, err
	}

	doc, err := tomledit.Parse(text)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}

	return &Updater{
		parsedConfig: parsedConfig,
		doc:          doc,
	}, nil
}

// ParsedConfig returns the loaded configuration, converted to the current
// schema in memory.
func (u *Updater) ParsedConfig() *config.Config {
	return u.parsedConfig
}

// ConfigVersion returns the version tag detected in the configuration
// file. Callers dispatch on it to pick the UpdateFrom method to run and
// the decisions to gather beforehand.
func (u *Updater) ConfigVersion() string {
	return u.parsedConfig.Version
}

// UpdateFromV01 migrates a version 0.1 configuration to the current
// version.
func (u *Updater) UpdateFromV01(
	switchScopesToAny bool,
	ticket AskForTicket,
	emptyPrefixToHash bool,
) (*Updated, error) {
	if err := u.checkVersion("0.1"); err != nil {
		return nil, err
	}
	updateFromV01(u.doc, switchScopesToAny, ticket, emptyPrefixToHash)
	return &Updated{doc: u.doc}, nil
}

// UpdateFromV02Dev0 migrates a version 0.2-dev.0 configuration to the
// current version.
func (u *Updater) UpdateFromV02Dev0(
	switchScopesToAny bool,
	ticket AskForTicket,
	emptyPrefixToHash bool,
) (*Updated, error) {
	if err := u.checkVersion("0.2-dev.0"); err != nil {
		return nil, err
	}
	updateFromV02Dev0(u.doc, switchScopesToAny, ticket, emptyPrefixToHash)
	return &Updated{doc: u.doc}, nil
}

// UpdateFromV02Dev1 migrates a version 0.2-dev.1 configuration to the
// current version.
func (u *Updater) UpdateFromV02Dev1(
	switchScopesToAny bool,
	emptyPrefixToHash bool,
) (*Updated, error) {
	if err := u.checkVersion("0.2-dev.1"); err != nil {
		return nil, err
	}
	updateFromV02Dev1(u.doc, switchScopesToAny, emptyPrefixToHash)
	return &Updated{doc: u.doc}, nil
}

// UpdateFromV02Dev2 migrates a version 0.2-dev.2 configuration to the
// current version.
func (u *Updater) UpdateFromV02Dev2(switchScopesToAny bool) (*Updated, error) {
	if err := u.checkVersion("0.2-dev.2"); err != nil {
		return nil, err
	}
	updateFromV02Dev2(u.doc, switchScopesToAny)
	return &Updated{doc: u.doc}, nil
}

// UpdateFromV02Dev3 migrates a version 0.2-dev.3 configuration to the
// current version.
func (u *Updater) UpdateFromV02Dev3() (*Updated, error) {
	if err := u.checkVersion("0.2-dev.3"); err != nil {
		return nil, err
	}
	updateFromV02Dev3(u.doc)
	return &Updated{doc: u.doc}, nil
}

// checkVersion guards against running a transform on the wrong source
// version. This is a programmer-error guard, not user-facing validation:
// the caller is expected to dispatch on ConfigVersion first.
func (u *Updater) checkVersion(triedFrom string) error {
	if actual := u.ConfigVersion(); actual != triedFrom {
		return &IncorrectVersionError{TriedFrom: triedFrom, Actual: actual}
	}
	return nil
}

// Render returns the migrated configuration text.
func (u *Updated) Render() string {
	return u.doc.String()
}

// Save writes the migrated configuration back to the repository
// configuration file, replacing it in full.
func (u *Updated) Save() error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(u.doc.String()), 0o644); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
