// Package version records build metadata injected at link time.
package version

// Populated via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/doeshing/uniterm/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
