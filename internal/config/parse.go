package config

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/gitzsh/gitz/internal/tomledit"
)

// developmentVersions lists the pre-release version tags observed in the
// wild, in release order. Their schemas were bridged by the stable release
// that followed them and are not loadable anymore.
var developmentVersions = []string{
	"0.2-dev.0",
	"0.2-dev.1",
	"0.2-dev.2",
	"0.2-dev.3",
}

// bridgingRelease is the stable release able to update configurations
// written by the development snapshots above.
const bridgingRelease = "0.2.0"

// snapshot is a typed configuration in a historical schema. Snapshots form
// a chain: each one knows how to convert itself into the next version.
type snapshot interface {
	// upgrade performs one forward conversion hop. It returns either the
	// next snapshot in the chain or, at the end of the chain, the current
	// Config.
	upgrade() (snapshot, *Config)
}

// historicalParsers maps each loadable historical version to the parser for
// its schema snapshot. The parsed snapshot is then upgraded hop by hop
// until it reaches the current version.
var historicalParsers = map[string]func(string) (snapshot, error){
	"0.1": parseV01,
}

// FromTOML parses a configuration of any supported version into the current
// schema. It never mutates its input: out-of-date configurations are
// converted in memory only.
func FromTOML(text string) (*Config, error) {
	version, err := probeVersion(text)
	if err != nil {
		return nil, err
	}

	if version == Version {
		return parseCurrent(text)
	}

	if parse, ok := historicalParsers[version]; ok {
		snap, err := parse(text)
		if err != nil {
			return nil, err
		}
		for {
			next, cfg := snap.upgrade()
			if cfg != nil {
				return cfg, nil
			}
			snap = next
		}
	}

	for _, dev := range developmentVersions {
		if version == dev {
			return nil, &UnsupportedDevelopmentVersionError{
				Version:         version,
				BridgingRelease: bridgingRelease,
			}
		}
	}

	return nil, &UnsupportedVersionError{Version: version}
}

// probeVersion extracts just the version tag from the configuration. It
// succeeds even when the rest of the document does not match any known
// schema: no other field can be trusted before the version is known.
func probeVersion(text string) (string, error) {
	var probe struct {
		Version *string `toml:"version"`
	}
	if err := toml.Unmarshal([]byte(text), &probe); err != nil {
		return "", &ParseError{Err: err}
	}
	if probe.Version == nil {
		return "", &ParseError{Err: errors.Newf("missing key %q", "version")}
	}
	return *probe.Version, nil
}

type rawScopes struct {
	Accept string   `toml:"accept"`
	List   []string `toml:"list"`
}

type rawTicket struct {
	Required *bool    `toml:"required"`
	Prefixes []string `toml:"prefixes"`
}

type rawTemplates struct {
	Commit *string `toml:"commit"`
}

type rawConfig struct {
	Version   string            `toml:"version"`
	Types     map[string]string `toml:"types"`
	Scopes    *rawScopes        `toml:"scopes"`
	Ticket    *rawTicket        `toml:"ticket"`
	Templates *rawTemplates     `toml:"templates"`
}

// parseCurrent parses a configuration already in the current schema.
func parseCurrent(text string) (*Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	if raw.Types == nil {
		return nil, missingKey("types")
	}
	if raw.Templates == nil {
		return nil, missingKey("templates")
	}
	if raw.Templates.Commit == nil {
		return nil, missingKey("templates.commit")
	}

	cfg := &Config{
		Version: raw.Version,
		Types:   typesFromMap(raw.Types, typesOrder(text)),
		Templates: Templates{
			Commit: *raw.Templates.Commit,
		},
	}

	if raw.Scopes != nil {
		switch Accept(raw.Scopes.Accept) {
		case AcceptAny:
			cfg.Scopes = &Scopes{Accept: AcceptAny}
		case AcceptList:
			if raw.Scopes.List == nil {
				return nil, missingKey("scopes.list")
			}
			cfg.Scopes = &Scopes{Accept: AcceptList, List: raw.Scopes.List}
		case "":
			return nil, missingKey("scopes.accept")
		default:
			return nil, &ParseError{
				Err: errors.Newf("invalid value %q for scopes.accept", raw.Scopes.Accept),
			}
		}
	}

	if raw.Ticket != nil {
		if raw.Ticket.Required == nil {
			return nil, missingKey("ticket.required")
		}
		if raw.Ticket.Prefixes == nil {
			return nil, missingKey("ticket.prefixes")
		}
		cfg.Ticket = &Ticket{
			Required: *raw.Ticket.Required,
			Prefixes: raw.Ticket.Prefixes,
		}
	}

	return cfg, nil
}

// typesOrder reads the order of the [types] table from the document text.
// The structural parser above does not preserve key order, so the order is
// recovered from a syntax-level scan; when the scan cannot help, the types
// end up sorted.
func typesOrder(text string) []string {
	doc, err := tomledit.Parse(text)
	if err != nil {
		return nil
	}
	entry := doc.Get("types")
	if entry == nil || entry.Table() == nil {
		return nil
	}
	return entry.Table().Keys()
}

func missingKey(key string) error {
	return &ParseError{Err: errors.Newf("missing key %q", key)}
}
