// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/grindlemire/go-kaolin/pkg/buildinfo.Version=v0.2.0 \
//	    -X github.com/grindlemire/go-kaolin/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("kaolin %s (%s)", Version, Commit)
}

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\n", Version, Commit)
}
