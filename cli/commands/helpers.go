package commands

import (
	"os"
	"path/filepath"
)

// getMapPath resolves the map path: explicit flag first, then the positional
// argument, then the configured default.
func getMapPath(flagValue string, args []string) string {
	if flagValue != "" {
		return flagValue
	}
	if len(args) > 0 {
		return args[0]
	}
	if cfg != nil && cfg.MapPath != "" {
		return cfg.MapPath
	}
	return "level.dat"
}

// findMapFile looks for a map file in common locations.
func findMapFile() string {
	commonPaths := []string{
		"level.dat",
		"map.dat",
		"maps/level.dat",
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, _ := filepath.Abs(path)
			return absPath
		}
	}
	return ""
}
