// Package version exposes the doxmd build metadata stamped at link time.
package version

// Populated by the release build via -ldflags; defaults identify a
// from-source build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
