// Package version holds the build identity shared by the CLI and the server.
package version

const (
	// Name is the program name reported by the CLI and the version endpoint.
	Name = "ipcalc"
	// Version is overridden at release time via -ldflags.
	Version = "dev"
)
