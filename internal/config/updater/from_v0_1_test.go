package updater

import (
	"strings"
	"testing"

	"github.com/gitzsh/gitz/internal/config"
)

const configV01 = `version = "0.1"

# The available types of commits.
#
# This is a list of types (1 word) and their description, separated by one or
# more spaces.
types = [
    "feat  introduces a new feature",
    "fix   patches a bug",
]

#The list of valid scopes.
scopes = ["config", "parser"]

# The list of valid ticket prefixes.
ticket_prefixes = [""]

# The commit message template, written with the Tera [1] templating engine.
# [1] https://tera.netlify.app/
template = """
{{ type }}{% if scope %} ({{ scope }}){% endif %}: {{ description }}

Refs: #{{ ticket }}
"""
`

const configV01Updated = `version = "0.2"

# The available types of commits and their description.
#
# Types are shown in the dialog in the order they appear in this configuration.
[types]
feat = "introduces a new feature"
fix = "patches a bug"

# The accepted scopes.
#
# This table is optional: if omitted, no scope will be asked for.
[scopes]
# What kind of scope to accept.
#
# Can be one of: "any", "list". If it is "list", a ` + "`list`" + ` key containing a list
# of valid scopes is required.
accept = "list"
list = ["config", "parser"]

# The ticket / issue reference configuration.
#
# This table is optional: if omitted, no ticket will be asked for.
[ticket]
# Set to true to require a ticket number.
# Set to false to ask for a ticket without requiring it.
required = true
# The list of valid ticket prefixes.
#
# Can be a ` + "`#`" + ` for GitHub / GitLab issues, or a Jira key for instance.
prefixes = ["#"]

# Templates written with the Tera [1] templating engine.
#
# Each template is documented below, with its list of available variables.
# Variables marked as optional can be ` + "`None`" + `, hence should be checked for
# presence in the template.
#
# [1] https://tera.netlify.app/
[templates]
# The commit template.
#
# Available variables:
#
#   - type: the type of commit
#   - scope (optional): the scope of the commit
#   - description: the short description
#   - breaking_change (optional): the description of the breaking change
#   - ticket (optional): the ticket reference
commit = """
{{ type }}{% if scope %} ({{ scope }}){% endif %}: {{ description }}

{% if ticket %}Refs: {{ ticket }}{% endif %}
"""
`

func TestUpdateFromV01(t *testing.T) {
	updater, err := Parse(configV01)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := updater.ConfigVersion(); got != "0.1" {
		t.Fatalf("ConfigVersion() = %q, want %q", got, "0.1")
	}

	updated, err := updater.UpdateFromV01(false, Ask(true), true)
	if err != nil {
		t.Fatalf("UpdateFromV01() error: %v", err)
	}

	if got := updated.Render(); got != configV01Updated {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, configV01Updated)
	}
}

func TestUpdateFromV01ResultIsCurrent(t *testing.T) {
	updater, err := Parse(configV01)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	updated, err := updater.UpdateFromV01(false, Ask(true), true)
	if err != nil {
		t.Fatalf("UpdateFromV01() error: %v", err)
	}

	cfg, err := config.FromTOML(updated.Render())
	if err != nil {
		t.Fatalf("FromTOML() error on updated configuration: %v", err)
	}

	if cfg.Version != config.Version {
		t.Errorf("Version = %q, want %q", cfg.Version, config.Version)
	}
	if got := cfg.Types.Keys(); len(got) != 2 || got[0] != "feat" || got[1] != "fix" {
		t.Errorf("Types.Keys() = %v, want [feat fix]", got)
	}
	if cfg.Scopes == nil || cfg.Scopes.Accept != config.AcceptList {
		t.Errorf("Scopes = %+v, want accept list", cfg.Scopes)
	}
	if cfg.Ticket == nil || !cfg.Ticket.Required {
		t.Errorf("Ticket = %+v, want required", cfg.Ticket)
	}
	if !strings.Contains(cfg.Templates.Commit, "{% if ticket %}Refs: {{ ticket }}{% endif %}") {
		t.Errorf("Templates.Commit = %q, want conditional ticket line", cfg.Templates.Commit)
	}
}

func TestUpdateFromV01ScopesToAny(t *testing.T) {
	updater, err := Parse(configV01)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	updated, err := updater.UpdateFromV01(true, Ask(false), true)
	if err != nil {
		t.Fatalf("UpdateFromV01() error: %v", err)
	}

	rendered := updated.Render()
	if !strings.Contains(rendered, "accept = \"any\"") {
		t.Errorf("rendered configuration does not switch scopes to any:\n%s", rendered)
	}
	if strings.Contains(rendered, "list = ") {
		t.Errorf("rendered configuration keeps the scope list:\n%s", rendered)
	}
	if !strings.Contains(rendered, "required = false") {
		t.Errorf("rendered configuration does not make the ticket optional:\n%s", rendered)
	}
}

func TestUpdateFromV01DontAskForTicket(t *testing.T) {
	updater, err := Parse(configV01)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	updated, err := updater.UpdateFromV01(false, DontAsk, false)
	if err != nil {
		t.Fatalf("UpdateFromV01() error: %v", err)
	}

	rendered := updated.Render()
	if strings.Contains(rendered, "[ticket]") || strings.Contains(rendered, "ticket_prefixes") {
		t.Errorf("rendered configuration keeps a ticket section:\n%s", rendered)
	}
}

func TestUpdateFromV01KeepsEmptyPrefix(t *testing.T) {
	updater, err := Parse(configV01)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	updated, err := updater.UpdateFromV01(false, Ask(true), false)
	if err != nil {
		t.Fatalf("UpdateFromV01() error: %v", err)
	}

	rendered := updated.Render()
	if !strings.Contains(rendered, `prefixes = [""]`) {
		t.Errorf("rendered configuration rewrites the empty prefix:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Refs: #{{ ticket }}") {
		t.Errorf("rendered configuration strips the hash prefix from the template:\n%s", rendered)
	}
}

func TestUpdateFromV01KeepsUserComments(t *testing.T) {
	src := strings.Replace(configV01,
		"#The list of valid scopes.\n",
		"#The list of valid scopes.\n# NOTE: keep in sync with the wiki.\n", 1)
	src = strings.Replace(src,
		"# The available types of commits.\n",
		"# The types we agreed on in #42.\n", 1)

	updater, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	updated, err := updater.UpdateFromV01(false, Ask(true), true)
	if err != nil {
		t.Fatalf("UpdateFromV01() error: %v", err)
	}

	rendered := updated.Render()
	if !strings.Contains(rendered, "# NOTE: keep in sync with the wiki.\n") {
		t.Errorf("user comment dropped during migration:\n%s", rendered)
	}
	if !strings.Contains(rendered, "# The types we agreed on in #42.\n") {
		t.Errorf("customized types comment dropped during migration:\n%s", rendered)
	}
	if strings.Contains(rendered, "# The available types of commits and their description.") {
		t.Errorf("customized types comment replaced by boilerplate:\n%s", rendered)
	}
}
