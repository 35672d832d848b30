// Package update checks whether a newer mapdat release is available.
package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/manicmap/mapdat-go/cli/internal/ui"
)

// latestKnownVersion is compared against the running build. A release
// pipeline stamps this; the fallback matches the default build version.
var latestKnownVersion = "0.1.0"

// CheckForUpdates compares the running version against the latest known
// release and prints a notice when an upgrade exists.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/manicmap/mapdat-go/cli@latest\n")
	}

	return nil
}

// GetDownloadURL returns the release artifact URL for the current platform.
func GetDownloadURL(ver string) string {
	return fmt.Sprintf("https://github.com/manicmap/mapdat-go/releases/download/v%s/mapdat-%s-%s",
		ver, runtime.GOOS, runtime.GOARCH)
}
