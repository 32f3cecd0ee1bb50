package updater

import "github.com/gitzsh/gitz/internal/tomledit"

// updateFromV02Dev2 migrates a version 0.2-dev.2 document to the current
// version.
func updateFromV02Dev2(doc *tomledit.Document, switchScopesToAny bool) {
	updateVersion(doc)

	if switchScopesToAny {
		scopesToAny(doc)
	}
}
