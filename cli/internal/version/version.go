// Package version carries the build metadata stamped in at link time.
package version

import (
	"fmt"
	"runtime"
)

// Overridden through -ldflags on release builds.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short is the one-line form the version command prints by default.
func Short() string {
	return fmt.Sprintf("mapdat version %s (%s/%s %s)",
		Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Full appends the commit and build stamp.
func Full() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", Short(), GitCommit, BuildDate)
}
