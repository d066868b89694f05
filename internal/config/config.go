package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backends an entry can be read from.
const (
	BackendPass     = "pass"
	BackendKeychain = "keychain"
)

// Config holds CLI configuration loaded from ~/.passfield/config.yaml.
type Config struct {
	Backend         string `yaml:"backend"`
	Command         string `yaml:"command"`
	StoreDir        string `yaml:"store_dir"`
	KeychainService string `yaml:"keychain_service"`
	AuditLog        string `yaml:"audit_log"` // empty disables; "default" is ~/.passfield/audit.log
	LogLevel        string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Backend:  BackendPass,
		Command:  "pass",
		LogLevel: "warn",
	}
}

// DefaultPath returns the default config file path: ~/.passfield/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".passfield", "config.yaml")
}

// Load reads a YAML config file from path. If the file does not exist,
// it returns the defaults and no error. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendPass, BackendKeychain:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendPass, BackendKeychain)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Backend == BackendPass && c.Command == "" {
		return errors.New("command must not be empty")
	}
	return nil
}

// Env returns the environment additions for the pass command.
func (c *Config) Env() []string {
	if c.StoreDir == "" {
		return nil
	}
	return []string{"PASSWORD_STORE_DIR=" + expandHome(c.StoreDir)}
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
