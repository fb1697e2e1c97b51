// Package version holds build-time version information for codesearch.
package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
