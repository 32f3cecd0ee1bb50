package config

// Configuration schemas for the 0.2 development snapshots.
//
// These schemas were only ever written by pre-release builds. Their version
// tags are not loadable anymore (see developmentVersions); the types remain
// because they are hops of the forward-conversion chain from v0.1 to the
// current schema.
//
// NOTE: Never change the fields of a historical snapshot. New requirements
// always introduce a new snapshot type.

// ticketV02Dev0 is the 0.2-dev.0 ticket table: prefixes only, a ticket
// being unconditionally required by the wizard of that era.
type ticketV02Dev0 struct {
	Prefixes []string
}

type configV02Dev0 struct {
	Version   string
	Types     Types
	Scopes    *Scopes
	Ticket    ticketV02Dev0
	Templates Templates
}

// upgrade converts the 0.2-dev.0 snapshot into the 0.2-dev.1 shape, where
// the ticket table gains a `required` flag. The dev.0 wizard always
// demanded a ticket, so the flag converts to true.
func (c *configV02Dev0) upgrade() (snapshot, *Config) {
	return &configV02Dev1{
		Version: c.Version,
		Types:   c.Types,
		Scopes:  c.Scopes,
		Ticket: &Ticket{
			Required: true,
			Prefixes: c.Ticket.Prefixes,
		},
		Templates: c.Templates,
	}, nil
}

type configV02Dev1 struct {
	Version   string
	Types     Types
	Scopes    *Scopes
	Ticket    *Ticket
	Templates Templates
}

// The 0.2-dev.2 and 0.2-dev.3 schemas are shape-identical to 0.2-dev.1;
// those releases only changed wizard behavior and documentation.
type configV02Dev2 configV02Dev1

type configV02Dev3 configV02Dev2

func (c *configV02Dev1) upgrade() (snapshot, *Config) {
	next := configV02Dev2(*c)
	return &next, nil
}

func (c *configV02Dev2) upgrade() (snapshot, *Config) {
	next := configV02Dev3(*c)
	return &next, nil
}

func (c *configV02Dev3) upgrade() (snapshot, *Config) {
	return nil, &Config{
		Version:   c.Version,
		Types:     c.Types,
		Scopes:    c.Scopes,
		Ticket:    c.Ticket,
		Templates: c.Templates,
	}
}
