// Package config loads CLI configuration from config files, environment
// variables, and .env files.
package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration.
type Config struct {
	// MapPath is the default map file when a command gets no argument.
	MapPath string
	// Strict promotes validation warnings to a failing exit code.
	Strict bool
	// NoColor disables colored diagnostic output.
	NoColor bool
	// WatchDebounceMs is the quiet interval before a watched file is
	// reparsed.
	WatchDebounceMs int
}

// LoadConfig loads configuration from .mapdat.yaml, the environment, and
// .env files. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".mapdat")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "mapdat"))

	viper.SetEnvPrefix("MAPDAT")
	viper.AutomaticEnv()

	viper.SetDefault("map_path", "level.dat")
	viper.SetDefault("strict", false)
	viper.SetDefault("no_color", false)
	viper.SetDefault("watch_debounce_ms", 500)

	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		MapPath:         viper.GetString("map_path"),
		Strict:          viper.GetBool("strict"),
		NoColor:         viper.GetBool("no_color"),
		WatchDebounceMs: viper.GetInt("watch_debounce_ms"),
	}

	return cfg, nil
}

// SaveConfig writes the configuration under the user config directory.
func SaveConfig(cfg *Config) error {
	viper.Set("map_path", cfg.MapPath)
	viper.Set("strict", cfg.Strict)
	viper.Set("no_color", cfg.NoColor)
	viper.Set("watch_debounce_ms", cfg.WatchDebounceMs)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "mapdat")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configPath, ".mapdat.yaml"))
}
