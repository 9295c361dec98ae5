// Package config loads service configuration from defaults, an optional
// YAML file and JOURNEY_* environment variables, in that order of priority.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/m-mizutani/goerr/v2"
)

// EnvPrefix prefixes every environment override, e.g. JOURNEY_DB_PATH.
const EnvPrefix = "JOURNEY_"

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "JOURNEY_CONFIG"

// DefaultConfigPaths are tried in order when no path is given.
var DefaultConfigPaths = []string{
	"journey.yaml",
	"journey.yml",
}

// Config is the full service configuration.
type Config struct {
	DB      DBConfig      `koanf:"db"`
	Log     LogConfig     `koanf:"log"`
	Server  ServerConfig  `koanf:"server"`
	Catalog CatalogConfig `koanf:"catalog"`
}

// DBConfig locates the durable visitor memory database.
type DBConfig struct {
	Path string `koanf:"path" validate:"required"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type ServerConfig struct {
	Addr string `koanf:"addr" validate:"required"`
	// CookieName holds the visitor id.
	CookieName string `koanf:"cookie_name" validate:"required"`
	// RevealCookieName marks a session that has already seen the upsell.
	RevealCookieName string `koanf:"reveal_cookie_name" validate:"required,nefield=CookieName"`
	SecureCookies    bool   `koanf:"secure_cookies"`
}

// CatalogConfig optionally replaces the built-in problem registry.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

func defaultConfig() *Config {
	return &Config{
		DB: DBConfig{Path: defaultDBPath()},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Addr:             ":8080",
			CookieName:       "aiplayland_visitor",
			RevealCookieName: "aiplayland_medreception_reveal_session_v1",
		},
	}
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".aiplayland", "journey.db")
}

// Load builds the configuration. path may be empty, in which case
// $JOURNEY_CONFIG and then DefaultConfigPaths are tried; a missing default
// file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, goerr.Wrap(err, "failed to load defaults")
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, goerr.Wrap(err, "failed to load config file", goerr.V("path", path))
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, goerr.Wrap(err, "failed to load environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps JOURNEY_SERVER_COOKIE_NAME to server.cookie_name.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return goerr.Wrap(err, "configuration validation failed")
	}
	return nil
}
