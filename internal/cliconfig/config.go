// Package cliconfig loads configuration for the hubspot command.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	hubspot "github.com/jdziat/hubspot-go"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// FileNames are the configuration file names searched for, in order.
var FileNames = []string{
	".hubspot.yaml",
	".hubspot.yml",
}

// Config represents the CLI configuration.
type Config struct {
	AccessToken    string        `yaml:"access_token"`
	OAuth          bool          `yaml:"oauth"`
	BaseURL        string        `yaml:"base_url"`
	QueryEncoding  string        `yaml:"query_encoding"`
	OmitEmptyQuery bool          `yaml:"omit_empty_query"`
	Timeout        time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       hubspot.DefaultBaseURL,
		QueryEncoding: string(query.DefaultEncoding),
		Timeout:       30 * time.Second,
	}
}

// Load reads configuration from the nearest config file at or above the
// working directory, then applies environment variable overrides.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadFile(FindConfigFile(dir))
}

// LoadFile reads configuration from path and applies environment variable
// overrides. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.AccessToken = expandEnvVar(cfg.AccessToken)

	return cfg, nil
}

// FindConfigFile searches dir and its parents for a config file and returns
// its path, or "" if none exists.
func FindConfigFile(dir string) string {
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies HUBSPOT_* environment variable overrides.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(hubspot.EnvAccessToken); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv(hubspot.EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(hubspot.EnvOAuth); v != "" {
		oauth, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", hubspot.EnvOAuth, v, err)
		}
		cfg.OAuth = oauth
	}
	if v := os.Getenv(hubspot.EnvQueryEncoding); v != "" {
		cfg.QueryEncoding = v
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// expandEnvVar expands ${VAR} and $VAR references.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "${")
		name = strings.TrimPrefix(name, "$")
		name = strings.TrimSuffix(name, "}")
		return os.Getenv(name)
	})
}

// ClientConfig converts the CLI configuration into a client configuration.
func (c *Config) ClientConfig() (*hubspot.Config, error) {
	enc, err := query.ParseEncoding(c.QueryEncoding)
	if err != nil {
		return nil, err
	}
	return &hubspot.Config{
		Token:          c.AccessToken,
		OAuth:          c.OAuth,
		BaseURL:        c.BaseURL,
		QueryEncoding:  enc,
		OmitEmptyQuery: c.OmitEmptyQuery,
	}, nil
}
