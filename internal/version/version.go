// Package version records build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the release version, "dev" for local builds
	Version = "dev"
	// GitSHA is the git commit the binary was built from
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a one-line description for version output.
func String() string {
	return fmt.Sprintf("efficio %s (%s) built %s", Version, GitSHA, BuildTime)
}
