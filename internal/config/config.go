package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ardour-tools/ardourfix/internal/automation"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the config file.
const (
	EnvStrictXML     = "ARDOURFIX_STRICT_XML"
	EnvVersionPrefix = "ARDOURFIX_VERSION_PREFIX"
	EnvRounding      = "ARDOURFIX_ROUNDING"
	EnvBackup        = "ARDOURFIX_BACKUP"
)

// Config holds the tool settings. Fields omitted from the file keep their defaults.
type Config struct {
	VersionPrefix string `yaml:"version_prefix"`
	Rounding      string `yaml:"rounding"`
	StrictXML     bool   `yaml:"strict_xml"`
	Backup        bool   `yaml:"backup"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		VersionPrefix: ardourfix.DefaultVersionPrefix,
		Rounding:      automation.RoundHalfEven.String(),
	}
}

// Load reads configuration from a YAML file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ardourfix.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Resolve loads the explicit config file if one is given, otherwise the
// ardourfix.ConfigFileName next to projectFile, falling back to Default when
// that file does not exist. It returns the path that was read, if any.
func Resolve(explicitPath, projectFile string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := Load(explicitPath)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, "", fmt.Errorf("%w: %s: %v", ardourfix.ErrInvalidConfig, explicitPath, err)
		}
		if err != nil {
			return nil, "", err
		}
		return cfg, explicitPath, nil
	}

	path := filepath.Join(filepath.Dir(projectFile), ardourfix.ConfigFileName)
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		def := Default()
		return &def, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// ApplyEnv overrides settings from environment variables. Unset or empty
// variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvVersionPrefix); v != "" {
		c.VersionPrefix = v
	}
	if v := getenv(EnvRounding); v != "" {
		c.Rounding = v
	}
	if v := getenv(EnvStrictXML); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ardourfix.ErrInvalidConfig, EnvStrictXML, v)
		}
		c.StrictXML = b
	}
	if v := getenv(EnvBackup); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ardourfix.ErrInvalidConfig, EnvBackup, v)
		}
		c.Backup = b
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.VersionPrefix == "" {
		return fmt.Errorf("%w: version_prefix must not be empty", ardourfix.ErrInvalidConfig)
	}
	if _, err := automation.ParseRoundingMode(c.Rounding); err != nil {
		return fmt.Errorf("%w: %v", ardourfix.ErrInvalidConfig, err)
	}
	return nil
}

// RoundingMode returns the parsed rounding setting. Call Validate first.
func (c *Config) RoundingMode() automation.RoundingMode {
	m, _ := automation.ParseRoundingMode(c.Rounding)
	return m
}
