package updater

import (
	"strings"
	"testing"

	"github.com/gitzsh/gitz/internal/tomledit"
)

const configV02Dev0 = `version = "0.2-dev.0"

[types]
feat = "introduces a new feature"

[scopes]
accept = "list"
list = ["config", "parser"]

[ticket]
prefixes = [""]

[templates]
commit = "{{ type }}: {{ description }}\n\nRefs: #{{ ticket }}\n"
`

const configV02Dev0Updated = `version = "0.2"

[types]
feat = "introduces a new feature"

[scopes]
# What kind of scope to accept.
#
# Can be one of: "any", "list". If it is "list", a ` + "`list`" + ` key containing a list
# of valid scopes is required.
accept = "any"

# The ticket / issue reference configuration.
#
# This table is optional: if omitted, no ticket will be asked for.
[ticket]
# Set to true to require a ticket number.
# Set to false to ask for a ticket without requiring it.
required = false
prefixes = ["#"]

# Templates written with the Tera [1] templating engine.
#
# Each template is documented below, with its list of available variables.
# Variables marked as optional can be ` + "`None`" + `, hence should be checked for
# presence in the template.
#
# [1] https://tera.netlify.app/
[templates]
commit = """
{{ type }}: {{ description }}

{% if ticket %}Refs: {{ ticket }}{% endif %}
"""
`

func parseDocument(t *testing.T, src string) *tomledit.Document {
	t.Helper()
	doc, err := tomledit.Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestUpdateFromV02Dev0(t *testing.T) {
	doc := parseDocument(t, configV02Dev0)

	updateFromV02Dev0(doc, true, Ask(false), true)

	if got := doc.String(); got != configV02Dev0Updated {
		t.Errorf("document mismatch:\ngot:\n%s\nwant:\n%s", got, configV02Dev0Updated)
	}
}

func TestUpdateFromV02Dev0DontAskForTicket(t *testing.T) {
	doc := parseDocument(t, configV02Dev0)

	updateFromV02Dev0(doc, false, DontAsk, false)

	rendered := doc.String()
	if strings.Contains(rendered, "[ticket]") {
		t.Errorf("ticket section not removed:\n%s", rendered)
	}
	if !strings.Contains(rendered, "accept = \"list\"") {
		t.Errorf("scope list not kept:\n%s", rendered)
	}
}

func TestUpdateFromV02Dev1(t *testing.T) {
	src := `version = "0.2-dev.1"

[types]
feat = "introduces a new feature"

[scopes]
accept = "any"

[ticket]
required = true
prefixes = [""]

[templates]
commit = "Refs: #{{ ticket }}\n"
`
	doc := parseDocument(t, src)

	updateFromV02Dev1(doc, false, true)

	rendered := doc.String()
	if !strings.Contains(rendered, "version = \"0.2\"") {
		t.Errorf("version not updated:\n%s", rendered)
	}
	if !strings.Contains(rendered, `prefixes = ["#"]`) {
		t.Errorf("empty prefix not replaced:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Refs: {{ ticket }}") ||
		strings.Contains(rendered, "#{{ ticket }}") {
		t.Errorf("hash prefix not removed from the template:\n%s", rendered)
	}
	if !strings.Contains(rendered, "# The ticket / issue reference configuration.") {
		t.Errorf("ticket documentation not added:\n%s", rendered)
	}
}

func TestUpdateFromV02Dev1WithoutDecisions(t *testing.T) {
	src := `version = "0.2-dev.1"

[types]
feat = "introduces a new feature"

[scopes]
accept = "list"
list = ["config"]

[ticket]
required = true
prefixes = [""]

[templates]
commit = "Refs: #{{ ticket }}\n"
`
	doc := parseDocument(t, src)

	updateFromV02Dev1(doc, false, false)

	rendered := doc.String()
	if !strings.Contains(rendered, `prefixes = [""]`) {
		t.Errorf("empty prefix rewritten without the decision:\n%s", rendered)
	}
	if !strings.Contains(rendered, "#{{ ticket }}") {
		t.Errorf("template rewritten without the decision:\n%s", rendered)
	}
}

func TestUpdateFromV02Dev2(t *testing.T) {
	src := `version = "0.2-dev.2"

[types]
feat = "introduces a new feature"

[scopes]
accept = "list"
list = ["config"]
`
	doc := parseDocument(t, src)

	updateFromV02Dev2(doc, true)

	want := `version = "0.2"

[types]
feat = "introduces a new feature"

[scopes]
accept = "any"
`
	if got := doc.String(); got != want {
		t.Errorf("document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestUpdateFromV02Dev3(t *testing.T) {
	src := `version = "0.2-dev.3"

# The available types of commits.
[types]
feat = "introduces a new feature"

[scopes]
accept = "any"

[ticket]
required = false
prefixes = ["#"]

[templates]
commit = "{{ type }}: {{ description }}"
`
	doc := parseDocument(t, src)

	updateFromV02Dev3(doc)

	rendered := doc.String()
	if !strings.Contains(rendered, "version = \"0.2\"") {
		t.Errorf("version not updated:\n%s", rendered)
	}
	if !strings.Contains(rendered, "# The available types of commits and their description.") {
		t.Errorf("types documentation not updated:\n%s", rendered)
	}
	if !strings.Contains(rendered, "# What kind of scope to accept.") {
		t.Errorf("scopes documentation not added:\n%s", rendered)
	}
}
