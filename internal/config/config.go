package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/freementors/mentorctl/internal/errors"
)

// DefaultAPIURL is the Free Mentors GraphQL endpoint used when nothing else
// is configured.
const DefaultAPIURL = "http://127.0.0.1:8000/graphql/"

// Environment variables honored by Load, in decreasing precedence below flags.
const (
	EnvHome       = "MENTORCTL_HOME"
	EnvAPIURL     = "MENTORCTL_API_URL"
	EnvPassphrase = "MENTORCTL_PASSPHRASE"
	EnvLogLevel   = "MENTORCTL_LOG_LEVEL"
)

// Config holds the client configuration.
type Config struct {
	// APIURL is the GraphQL endpoint of the mentorship platform.
	APIURL string `yaml:"api_url"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Home is the mentorctl state directory. Not persisted in the config
	// file since the file lives inside it.
	Home string `yaml:"-"`

	// Passphrase enables at-rest encryption of the stored access token.
	// Only read from the environment; never written to disk.
	Passphrase string `yaml:"-"`
}

// DefaultHome returns the default state directory (~/.mentorctl), honoring
// MENTORCTL_HOME when set.
func DefaultHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative directory; credential storage degrades
		// to the logged-out state if this is unusable.
		return ".mentorctl"
	}
	return filepath.Join(userHome, ".mentorctl")
}

// Load builds the configuration from defaults, the config file, and the
// environment, in that order.
func Load(home string) (*Config, error) {
	if home == "" {
		home = DefaultHome()
	}

	cfg := &Config{
		APIURL:   DefaultAPIURL,
		LogLevel: "warn",
		Home:     home,
	}

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigUnmarshal,
				fmt.Sprintf("failed to parse %s", path), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to read %s", path), err)
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	cfg.Passphrase = os.Getenv(EnvPassphrase)

	if cfg.APIURL == "" {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "api_url cannot be empty")
	}

	return cfg, nil
}

// CredentialsPath returns the path of the persisted credential record.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.Home, "credentials.json")
}

// Save writes the persistable part of the configuration back to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Home, 0700); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to create state directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to marshal config", err)
	}

	path := filepath.Join(c.Home, "config.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
