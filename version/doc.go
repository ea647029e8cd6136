// Package version provides version information and build metadata for sorts.
//
// Version information comes from compile-time variables (Version, Commit,
// Date) set via -ldflags, falling back to debug.ReadBuildInfo() and then to
// development defaults:
//
//	-ldflags "-X github.com/dendrascience/sorts/version.Version=v1.0.0 -X github.com/dendrascience/sorts/version.Commit=abc123"
package version
