package config

import "fmt"

// ConfigFileError reports a failure to resolve the configuration file path,
// typically because the Git repository root could not be determined.
type ConfigFileError struct {
	Err error
}

func (e *ConfigFileError) Error() string {
	return "failed to get the configuration file path"
}

func (e *ConfigFileError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure while reading the configuration file.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s", FileName)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports that the configuration is not valid TOML or does not
// have the shape its version promises.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s", FileName)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedVersionError reports a version tag this release does not know
// about, typically written by a more recent release.
type UnsupportedVersionError struct {
	// Version is the unrecognized version tag.
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported configuration version %q", e.Version)
}

// UnsupportedDevelopmentVersionError reports a configuration written by a
// development snapshot. Development schemas are only ever bridgeable by the
// stable release that immediately followed them; this error names that
// release so the user can run its updater first.
type UnsupportedDevelopmentVersionError struct {
	// Version is the development version tag.
	Version string
	// BridgingRelease is the only git-z release able to update a
	// configuration carrying this version.
	BridgingRelease string
}

func (e *UnsupportedDevelopmentVersionError) Error() string {
	return fmt.Sprintf(
		"configuration version %q is a development version that only git-z %s can update",
		e.Version, e.BridgingRelease,
	)
}
