// Package config loads praxis settings. Values come from built-in defaults,
// then the user config file, then a project .praxis.yaml, then PRAXIS_*
// environment variables, each layer overriding the one before.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/viper"
)

const (
	appName           = "praxis"
	projectConfigName = ".praxis.yaml"
	envPrefix         = "PRAXIS"
)

type Config struct {
	// DBPath is the SQLite exercise catalog.
	DBPath string `mapstructure:"db_path"`
	// LibraryPath, when set, is read instead of the catalog.
	LibraryPath string `mapstructure:"library_path"`
	Persona     string `mapstructure:"persona"`
	LogCalls    bool   `mapstructure:"log_calls"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load resolves the layered configuration for the current user and
// working directory.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(UserConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if path := findProjectConfig(); path != "" {
		project := viper.New()
		project.SetConfigFile(path)
		if err := project.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", path, err)
		}
		if err := v.MergeConfigMap(project.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return decode(v)
}

// LoadFromPath reads a single config file over the defaults.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return decode(v)
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DBPath:   defaultDBPath(),
		Persona:  domain.DefaultPersona,
		LogLevel: "info",
	}
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.LibraryPath = expandHome(cfg.LibraryPath)
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("library_path", d.LibraryPath)
	v.SetDefault("persona", d.Persona)
	v.SetDefault("log_calls", d.LogCalls)
	v.SetDefault("log_level", d.LogLevel)
}

// UserConfigDir is $XDG_CONFIG_HOME/praxis, or ~/.config/praxis.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".praxis", "praxis.db")
	}
	return filepath.Join(home, ".praxis", "praxis.db")
}

// findProjectConfig searches the working directory and its parents.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, projectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
