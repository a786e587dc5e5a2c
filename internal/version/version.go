// Package version exposes the build-time version string.
package version

// version is injected at build time via -ldflags "-X diffscaffold/internal/version.version=...".
var version string

// Value returns the injected version, or an empty string for dev builds.
func Value() string {
	return version
}
