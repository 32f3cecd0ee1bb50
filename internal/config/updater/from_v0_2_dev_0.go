package updater

import "github.com/gitzsh/gitz/internal/tomledit"

// updateFromV02Dev0 migrates a version 0.2-dev.0 document to the current
// version.
func updateFromV02Dev0(
	doc *tomledit.Document,
	switchScopesToAny bool,
	ticket AskForTicket,
	emptyPrefixToHash bool,
) {
	updateVersion(doc)

	if switchScopesToAny {
		scopesToAny(doc)
	}

	if ticket.ask {
		updateTicketDev0(doc, ticket.require, emptyPrefixToHash)
	} else {
		doc.Remove("ticket")
	}

	updateCommitTemplateDev0(doc, emptyPrefixToHash)

	updateTypesDoc(doc)
	updateScopesDoc(doc)
	updateTicketDoc(doc)
	updateTemplatesDoc(doc)
}

// updateTicketDev0 adds the `required` key to the ticket table, keeping
// `prefixes` after it.
func updateTicketDev0(
	doc *tomledit.Document,
	required bool,
	emptyPrefixToHash bool,
) {
	entry := doc.Get("ticket")
	if entry == nil {
		panic("no `ticket` key")
	}
	ticket := entry.Table()
	if ticket == nil {
		panic("the `ticket` key is not a table")
	}

	prefixesDoc, ok := ticket.KeyDecor("prefixes")
	if !ok {
		panic("no `ticket.prefixes` key")
	}
	prefixes := ticket.Remove("prefixes")

	if emptyPrefixToHash {
		prefixes = emptyPrefixToHashValue(prefixes)
	}

	ticket.Insert("required", tomledit.Bool(required))
	ticket.Insert("prefixes", prefixes)
	ticket.SetKeyDecor("prefixes", prefixesDoc)
}

// updateCommitTemplateDev0 rewrites the commit template for optional
// tickets.
func updateCommitTemplateDev0(doc *tomledit.Document, removeHashPrefix bool) {
	template := commitTemplate(doc)
	template = addTicketConditionToCommitTemplate(template)
	if removeHashPrefix {
		template = removeHashTicketPrefixFromCommitTemplate(template)
	}
	setCommitTemplate(doc, template)
}
