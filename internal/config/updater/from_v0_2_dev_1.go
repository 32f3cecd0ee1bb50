package updater

import "github.com/gitzsh/gitz/internal/tomledit"

// updateFromV02Dev1 migrates a version 0.2-dev.1 document to the current
// version.
func updateFromV02Dev1(
	doc *tomledit.Document,
	switchScopesToAny bool,
	emptyPrefixToHash bool,
) {
	updateVersion(doc)

	if switchScopesToAny {
		scopesToAny(doc)
	}

	if emptyPrefixToHash {
		updateTicketPrefixDev1(doc)
		setCommitTemplate(doc,
			removeHashTicketPrefixFromCommitTemplate(commitTemplate(doc)))
	}

	updateTypesDoc(doc)
	updateScopesDoc(doc)
	updateTicketDoc(doc)
	updateTemplatesDoc(doc)
}

// updateTicketPrefixDev1 replaces an empty ticket prefix by "#".
func updateTicketPrefixDev1(doc *tomledit.Document) {
	entry := doc.Get("ticket")
	if entry == nil {
		return
	}
	ticket := entry.Table()
	if ticket == nil {
		panic("the `ticket` key is not a table")
	}
	prefixes := ticket.Get("prefixes")
	if prefixes == nil {
		panic("no `ticket.prefixes` key")
	}
	ticket.Insert("prefixes", emptyPrefixToHashValue(prefixes))
}
