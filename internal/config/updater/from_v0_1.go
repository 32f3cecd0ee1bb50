package updater

import (
	"strings"

	"github.com/gitzsh/gitz/internal/config"
	"github.com/gitzsh/gitz/internal/tomledit"
)

// Documentation blocks only ever written by version 0.1.
const (
	oldTypesDocV01 = "\n# The available types of commits.\n" +
		"#\n" +
		"# This is a list of types (1 word) and their description, separated by one or\n" +
		"# more spaces.\n"

	oldScopesDocV01 = "\n#The list of valid scopes.\n"
)

// updateFromV01 migrates a version 0.1 document to the current version.
func updateFromV01(
	doc *tomledit.Document,
	switchScopesToAny bool,
	ticket AskForTicket,
	emptyPrefixToHash bool,
) {
	updateVersion(doc)
	updateTypesV01(doc)
	updateScopesV01(doc, switchScopesToAny)

	if ticket.ask {
		updateTicketV01(doc, ticket.require, emptyPrefixToHash)
	} else {
		doc.Remove("ticket_prefixes")
	}

	updateTemplatesV01(doc, emptyPrefixToHash)
}

// updateTypesV01 converts the flat `types` array into a table mapping each
// type to its description.
func updateTypesV01(doc *tomledit.Document) {
	entry := doc.Get("types")
	if entry == nil || entry.Value() == nil {
		panic("no `types` key")
	}
	ss, ok := entry.Value().AsStringSlice()
	if !ok {
		panic("the `types` key is not an array of strings")
	}
	keyDoc := entry.Decor()

	types := tomledit.NewTable()
	for _, ty := range ss {
		name, desc := config.SplitTypeAndDesc(ty)
		types.Insert(name, tomledit.String(desc))
	}

	e := doc.SetTable("types", types)
	e.SetDecor(strings.ReplaceAll(keyDoc, oldTypesDocV01, newTypesDoc))
}

// updateScopesV01 converts the flat `scopes` array into an accept-tagged
// table, carrying the old list over unless scopes switch to any.
func updateScopesV01(doc *tomledit.Document, switchScopesToAny bool) {
	entry := doc.Get("scopes")
	if entry == nil || entry.Value() == nil {
		panic("no `scopes` key")
	}
	keyDoc := entry.Decor()
	list := entry.Value().Clone()

	scopes := tomledit.NewTable()
	if switchScopesToAny {
		scopes.Insert("accept", tomledit.String("any"))
	} else {
		scopes.Insert("accept", tomledit.String("list"))
		scopes.Insert("list", list)
	}
	scopes.SetKeyDecor("accept", scopesAcceptDoc)

	e := doc.SetTable("scopes", scopes)
	e.SetDecor(strings.ReplaceAll(keyDoc, oldScopesDocV01, newScopesDoc))
}

// updateTicketV01 converts the flat `ticket_prefixes` array into the nested
// `ticket` table.
func updateTicketV01(
	doc *tomledit.Document,
	required bool,
	emptyPrefixToHash bool,
) {
	entry := doc.Get("ticket_prefixes")
	if entry == nil || entry.Value() == nil {
		panic("no `ticket_prefixes` key")
	}
	keyDoc := entry.Decor()

	prefixes := entry.Value().Clone()
	if emptyPrefixToHash {
		prefixes = emptyPrefixToHashValue(prefixes)
	}

	ticket := tomledit.NewTable()
	ticket.Insert("required", tomledit.Bool(required))
	ticket.Insert("prefixes", prefixes)
	ticket.SetKeyDecor("required", ticketRequiredDoc)
	ticket.SetKeyDecor("prefixes", strings.ReplaceAll(
		trimDecorStart(keyDoc), oldTicketPrefixesDoc, newTicketPrefixesDoc))

	doc.Remove("ticket_prefixes")
	e := doc.SetTable("ticket", ticket)
	e.SetDecor(ticketDoc)
}

// updateTemplatesV01 moves the bare `template` string into the nested
// `templates` table, rewriting the template on the way.
func updateTemplatesV01(doc *tomledit.Document, removeHashPrefix bool) {
	entry := doc.Get("template")
	if entry == nil || entry.Value() == nil {
		panic("no `template` key")
	}
	keyDoc := entry.Decor()

	template, ok := entry.Value().AsString()
	if !ok {
		panic("the `template` key is not a string")
	}
	template = addTicketConditionToCommitTemplate(template)
	if removeHashPrefix {
		template = removeHashTicketPrefixFromCommitTemplate(template)
	}

	templates := tomledit.NewTable()
	templates.Insert("commit", tomledit.String(template))
	templates.SetKeyDecor("commit", strings.ReplaceAll(
		trimDecorStart(keyDoc), oldTemplatesCommitDoc, newTemplatesCommitDoc))

	doc.Remove("template")
	e := doc.SetTable("templates", templates)
	e.SetDecor(templatesDoc)
}
