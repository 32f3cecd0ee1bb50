package config

// Configuration schema, version 0.1.
//
// NOTE: Never change the fields of a historical snapshot. New requirements
// always introduce a new snapshot type.

import (
	"github.com/pelletier/go-toml/v2"
)

type configV01 struct {
	Version        string   `toml:"version"`
	Types          []string `toml:"types"`
	Scopes         []string `toml:"scopes"`
	Template       string   `toml:"template"`
	TicketPrefixes []string `toml:"ticket_prefixes"`
}

type rawConfigV01 struct {
	Version        string   `toml:"version"`
	Types          []string `toml:"types"`
	Scopes         []string `toml:"scopes"`
	Template       *string  `toml:"template"`
	TicketPrefixes []string `toml:"ticket_prefixes"`
}

func parseV01(text string) (snapshot, error) {
	var raw rawConfigV01
	if err := toml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	if raw.Types == nil {
		return nil, missingKey("types")
	}
	if raw.Scopes == nil {
		return nil, missingKey("scopes")
	}
	if raw.Template == nil {
		return nil, missingKey("template")
	}
	if raw.TicketPrefixes == nil {
		return nil, missingKey("ticket_prefixes")
	}

	return &configV01{
		Version:        raw.Version,
		Types:          raw.Types,
		Scopes:         raw.Scopes,
		Template:       *raw.Template,
		TicketPrefixes: raw.TicketPrefixes,
	}, nil
}

// upgrade converts the v0.1 snapshot into the 0.2-dev.0 shape: the type
// list becomes an ordered type→description mapping, the scope list becomes
// a tagged scopes table, the prefix list moves under a ticket table, and
// the bare template moves under templates.commit.
func (c *configV01) upgrade() (snapshot, *Config) {
	var types Types
	for _, entry := range c.Types {
		name, desc := SplitTypeAndDesc(entry)
		types.Add(name, desc)
	}

	var scopes *Scopes
	if len(c.Scopes) > 0 {
		scopes = &Scopes{Accept: AcceptList, List: c.Scopes}
	}

	return &configV02Dev0{
		Version: c.Version,
		Types:   types,
		Scopes:  scopes,
		Ticket:  ticketV02Dev0{Prefixes: c.TicketPrefixes},
		Templates: Templates{
			Commit: c.Template,
		},
	}, nil
}
