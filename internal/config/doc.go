// Package config defines the git-z configuration and its versioned schema.
//
// Every git-z.toml carries a `version` field. The current schema is the only
// one the rest of the program consumes; files written by older releases are
// parsed into a frozen snapshot of their historical schema and threaded
// through a chain of forward conversions, one version hop at a time, until
// they reach the current shape. Snapshots are never modified once released:
// a schema change always introduces a new snapshot type.
//
// The companion package updater rewrites out-of-date configuration files in
// place, preserving user comments and formatting.
package config
