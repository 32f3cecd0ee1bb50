package updater

// Helpers shared between the per-version migration transforms.
//
// NOTE: Transforms panic instead of returning errors when the document does
// not have the shape its version promises. Parse has already validated the
// configuration by the time a transform runs, so any failure here is a bug,
// not a user error.

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gitzsh/gitz/internal/config"
	"github.com/gitzsh/gitz/internal/tomledit"
)

// Canonical documentation blocks, past and current. A block is only ever
// replaced when the text in the file matches the old canonical text
// verbatim (or is empty): anything else is assumed to be a user
// customization and is left untouched.
const (
	oldTypesDoc = "\n# The available types of commits.\n"

	newTypesDoc = "\n# The available types of commits and their description.\n" +
		"#\n" +
		"# Types are shown in the dialog in the order they appear in this configuration.\n"

	oldScopesDoc = "\n# The accepted scopes.\n"

	newScopesDoc = "\n# The accepted scopes.\n" +
		"#\n" +
		"# This table is optional: if omitted, no scope will be asked for.\n"

	scopesAcceptDoc = "# What kind of scope to accept.\n" +
		"#\n" +
		"# Can be one of: \"any\", \"list\". If it is \"list\", a `list` key containing a list\n" +
		"# of valid scopes is required.\n"

	ticketDoc = "\n# The ticket / issue reference configuration.\n" +
		"#\n" +
		"# This table is optional: if omitted, no ticket will be asked for.\n"

	ticketRequiredDoc = "# Set to true to require a ticket number.\n" +
		"# Set to false to ask for a ticket without requiring it.\n"

	oldTicketPrefixesDoc = "# The list of valid ticket prefixes.\n"

	newTicketPrefixesDoc = "# The list of valid ticket prefixes.\n" +
		"#\n" +
		"# Can be a `#` for GitHub / GitLab issues, or a Jira key for instance.\n"

	templatesDoc = "\n# Templates written with the Tera [1] templating engine.\n" +
		"#\n" +
		"# Each template is documented below, with its list of available variables.\n" +
		"# Variables marked as optional can be `None`, hence should be checked for\n" +
		"# presence in the template.\n" +
		"#\n" +
		"# [1] https://tera.netlify.app/\n"

	oldTemplatesCommitDoc = "# The commit message template, written with the Tera [1] templating engine.\n" +
		"# [1] https://tera.netlify.app/\n"

	newTemplatesCommitDoc = "# The commit template.\n" +
		"#\n" +
		"# Available variables:\n" +
		"#\n" +
		"#   - type: the type of commit\n" +
		"#   - scope (optional): the scope of the commit\n" +
		"#   - description: the short description\n" +
		"#   - breaking_change (optional): the description of the breaking change\n" +
		"#   - ticket (optional): the ticket reference\n"
)

// ticketLine matches the first template line using the ticket variable.
var ticketLine = regexp.MustCompile(`.*\{\{ ticket \}\}.*`)

// updateVersion writes the current version into the version entry.
func updateVersion(doc *tomledit.Document) {
	entry := doc.Get("version")
	if entry == nil || entry.Value() == nil {
		panic("no `version` key")
	}
	entry.SetValue(tomledit.String(config.Version))
}

// scopesToAny switches the accepted scopes from a list to any.
func scopesToAny(doc *tomledit.Document) {
	entry := doc.Get("scopes")
	if entry == nil {
		return
	}
	scopes := entry.Table()
	if scopes == nil {
		panic("the `scopes` key is not a table")
	}
	scopes.Insert("accept", tomledit.String("any"))
	scopes.Remove("list")
}

// emptyPrefixToHashValue replaces the first empty ticket prefix by "#",
// returning the value unchanged when there is none.
func emptyPrefixToHashValue(prefixes *tomledit.Value) *tomledit.Value {
	ss, ok := prefixes.AsStringSlice()
	if !ok {
		panic("the `ticket.prefixes` key is not an array of strings")
	}
	for i, s := range ss {
		if s == "" {
			ss[i] = "#"
			return tomledit.Strings(ss)
		}
	}
	return prefixes
}

// commitTemplate reads the templates.commit string.
func commitTemplate(doc *tomledit.Document) string {
	templates := templatesTable(doc)
	value := templates.Get("commit")
	if value == nil {
		panic("no `templates.commit` key")
	}
	template, ok := value.AsString()
	if !ok {
		panic("the `templates.commit` key is not a string")
	}
	return template
}

// setCommitTemplate replaces the templates.commit string, keeping its
// documentation.
func setCommitTemplate(doc *tomledit.Document, template string) {
	templatesTable(doc).Insert("commit", tomledit.String(template))
}

func templatesTable(doc *tomledit.Document) *tomledit.Table {
	entry := doc.Get("templates")
	if entry == nil {
		panic("no `templates` key")
	}
	templates := entry.Table()
	if templates == nil {
		panic("the `templates` key is not a table")
	}
	return templates
}

// addTicketConditionToCommitTemplate wraps the first template line using
// the ticket variable in a conditional block, so the line disappears from
// rendered output when no ticket was supplied. Other lines are never
// touched, even adjacent ones.
func addTicketConditionToCommitTemplate(template string) string {
	loc := ticketLine.FindStringIndex(template)
	if loc == nil {
		return template
	}
	return template[:loc[0]] +
		"{% if ticket %}" + template[loc[0]:loc[1]] + "{% endif %}" +
		template[loc[1]:]
}

// removeHashTicketPrefixFromCommitTemplate strips the hard-coded `#`
// before the ticket variable, redundant once prefixes carry their own `#`.
func removeHashTicketPrefixFromCommitTemplate(template string) string {
	return strings.ReplaceAll(template, "#{{ ticket }}", "{{ ticket }}")
}

// updateTypesDoc updates the documentation of the types table.
func updateTypesDoc(doc *tomledit.Document) {
	entry := doc.Get("types")
	if entry == nil {
		panic("no `types` key")
	}
	if entry.Table() == nil {
		panic("the `types` key is not a table")
	}
	entry.SetDecor(strings.ReplaceAll(entry.Decor(), oldTypesDoc, newTypesDoc))
}

// updateScopesDoc updates the documentation of the scopes table.
func updateScopesDoc(doc *tomledit.Document) {
	entry := doc.Get("scopes")
	if entry == nil {
		return
	}
	scopes := entry.Table()
	if scopes == nil {
		panic("the `scopes` key is not a table")
	}
	entry.SetDecor(strings.ReplaceAll(entry.Decor(), oldScopesDoc, newScopesDoc))
	updateScopesAcceptDoc(scopes)
}

// updateScopesAcceptDoc documents scopes.accept when it has no
// documentation yet.
func updateScopesAcceptDoc(scopes *tomledit.Table) {
	decor, ok := scopes.KeyDecor("accept")
	if !ok {
		panic("no `scopes.accept` key")
	}
	if strings.TrimSpace(decor) == "" {
		scopes.SetKeyDecor("accept", scopesAcceptDoc)
	}
}

// updateTicketDoc updates the documentation of the ticket table.
func updateTicketDoc(doc *tomledit.Document) {
	entry := doc.Get("ticket")
	if entry == nil {
		return
	}
	ticket := entry.Table()
	if ticket == nil {
		panic("the `ticket` key is not a table")
	}
	if strings.TrimSpace(entry.Decor()) == "" {
		entry.SetDecor(ticketDoc)
	}
	updateTicketRequiredDoc(ticket)
	updateTicketPrefixesDoc(ticket)
}

// updateTicketRequiredDoc documents ticket.required when it has no
// documentation yet.
func updateTicketRequiredDoc(ticket *tomledit.Table) {
	decor, ok := ticket.KeyDecor("required")
	if !ok {
		panic("no `ticket.required` key")
	}
	if strings.TrimSpace(decor) == "" {
		ticket.SetKeyDecor("required", ticketRequiredDoc)
	}
}

// updateTicketPrefixesDoc updates the documentation of ticket.prefixes.
func updateTicketPrefixesDoc(ticket *tomledit.Table) {
	decor, ok := ticket.KeyDecor("prefixes")
	if !ok {
		panic("no `ticket.prefixes` key")
	}
	ticket.SetKeyDecor("prefixes",
		strings.ReplaceAll(decor, oldTicketPrefixesDoc, newTicketPrefixesDoc))
}

// updateTemplatesDoc updates the documentation of the templates table.
func updateTemplatesDoc(doc *tomledit.Document) {
	entry := doc.Get("templates")
	if entry == nil {
		panic("no `templates` key")
	}
	templates := entry.Table()
	if templates == nil {
		panic("the `templates` key is not a table")
	}
	if strings.TrimSpace(entry.Decor()) == "" {
		entry.SetDecor(templatesDoc)
	}
	updateTemplatesCommitDoc(templates)
}

// updateTemplatesCommitDoc updates the documentation of templates.commit.
func updateTemplatesCommitDoc(templates *tomledit.Table) {
	decor, ok := templates.KeyDecor("commit")
	if !ok {
		panic("no `templates.commit` key")
	}
	templates.SetKeyDecor("commit",
		strings.ReplaceAll(decor, oldTemplatesCommitDoc, newTemplatesCommitDoc))
}

// trimDecorStart removes the leading whitespace (including blank lines) of
// a decor, used when a decor moves from a top-level key to the first key
// of a new table.
func trimDecorStart(decor string) string {
	return strings.TrimLeftFunc(decor, unicode.IsSpace)
}
