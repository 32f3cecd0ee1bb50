// Package tomledit provides an editable, concrete-syntax-tree representation
// of a TOML document.
//
// Unlike a structural (un)marshaler, tomledit keeps every comment, blank line
// and formatting choice attached to the entry it precedes, so a document can
// be loaded, selectively rewritten and saved while reproducing untouched
// parts byte-for-byte. It intentionally supports only the subset of TOML used
// by git-z configuration files: top-level key/values, standard `[table]`
// sections containing key/values, strings (all four TOML string kinds),
// booleans, numbers and arrays.
package tomledit
