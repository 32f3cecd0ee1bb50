package updater

import "github.com/gitzsh/gitz/internal/tomledit"

// updateFromV02Dev3 migrates a version 0.2-dev.3 document to the current
// version.
func updateFromV02Dev3(doc *tomledit.Document) {
	updateVersion(doc)
	updateTypesDoc(doc)
	updateScopesDoc(doc)
	updateTicketDoc(doc)
	updateTemplatesDoc(doc)
}
