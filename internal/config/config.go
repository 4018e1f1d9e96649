package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format and --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Environment variables read by Load.
const (
	EnvHome      = "CARDLIST_HOME"
	EnvLogLevel  = "CARDLIST_LOG_LEVEL"
	EnvLogFormat = "CARDLIST_LOG_FORMAT"
)

const (
	defaultDirName  = ".cardlist"
	configFileName  = "config.yaml"
	defaultLogLevel = "info"
	defaultLogFmt   = "console"
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
)

// Config is the cardlist configuration file.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	TUI     TUIConfig     `yaml:"tui"`

	configPath string
}

// CatalogConfig lists the catalog files loaded when no --data flag is given.
// Relative paths are resolved against the directory of the config file.
type CatalogConfig struct {
	Paths []string `yaml:"paths"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// TUIConfig controls the interactive browser.
type TUIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
}

// HomeDir returns $CARDLIST_HOME, or ~/.cardlist when unset.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// DefaultConfigPath returns the config file location under HomeDir.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// New returns a configuration holding only defaults.
func New() *Config {
	return &Config{
		Catalog: CatalogConfig{Paths: []string{}},
		Output:  OutputConfig{DefaultFormat: OutputTable},
		Logging: LoggingConfig{Level: defaultLogLevel, Format: defaultLogFmt},
		TUI:     TUIConfig{AltScreen: true},

		configPath: DefaultConfigPath(),
	}
}

// Load builds a configuration from defaults, the YAML file at path (the
// default location when path is empty) and the environment. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	if _, err := os.Stat(cfg.configPath); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot access config path %s: %w", cfg.configPath, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfg.configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overrides logging settings from the environment.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// fillDefaults restores defaults for fields a replaced section left empty.
func (c *Config) fillDefaults() {
	if c.Output.DefaultFormat == "" {
		c.Output.DefaultFormat = OutputTable
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFmt
	}
	if c.Catalog.Paths == nil {
		c.Catalog.Paths = []string{}
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if err := ValidateOutputFormat(c.Output.DefaultFormat); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q (must be json or console)", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// ValidateOutputFormat checks a table/json/yaml output format name.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be table, json or yaml)", ErrInvalidOutputFormat, format)
	}
}

// ConfigPath returns the file this configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// CatalogPaths returns the configured catalog paths, relative ones resolved
// against the config file's directory.
func (c *Config) CatalogPaths() []string {
	base := filepath.Dir(c.configPath)
	paths := make([]string, 0, len(c.Catalog.Paths))
	for _, p := range c.Catalog.Paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Save writes the configuration as YAML to ConfigPath.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}
