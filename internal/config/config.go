// Package config loads catalogview settings from YAML files and the environment.
//
// Precedence, lowest first: built-in defaults, the global config file, the
// project-local config file, environment variables, command-line flags (applied by
// the cli package).
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/pagination"
)

// Directory and file names.
const (
	DirName        = ".catalogview"
	ConfigFileName = "config.yaml"
	LogFileName    = "catalogview.log"
)

// Environment variables.
const (
	EnvConfig     = "CATALOGVIEW_CONFIG"
	EnvEndpoint   = "CATALOGVIEW_ENDPOINT"
	EnvLogLevel   = "CATALOGVIEW_LOG_LEVEL"
	EnvLogFormat  = "CATALOGVIEW_LOG_FORMAT"
	EnvProjectDir = "CATALOGVIEW_PROJECT_DIR"
)

// Validation errors.
var (
	ErrEmptyEndpoint   = errors.New("source.endpoint must not be empty")
	ErrInvalidEndpoint = errors.New("source.endpoint must be an http or https URL")
	ErrNegativeTimeout = errors.New("source.timeout must not be negative")
	ErrInvalidPageSize = errors.New("page sizes must be between 1 and 1000")
)

// Config is the full catalogview configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Display DisplayConfig `yaml:"display"`
	Images  ImagesConfig  `yaml:"images"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes where the catalog is fetched from.
type SourceConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DisplayConfig holds pagination defaults.
type DisplayConfig struct {
	PageSize  int   `yaml:"page_size"`
	PageSizes []int `yaml:"page_sizes"`
}

// ImagesConfig holds the image denylist and placeholders.
type ImagesConfig struct {
	BlockedDomains   []string `yaml:"blocked_domains"`
	Placeholder      string   `yaml:"placeholder"`
	ErrorPlaceholder string   `yaml:"error_placeholder"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Source: SourceConfig{
			Endpoint: catalog.DefaultEndpoint,
		},
		Display: DisplayConfig{
			PageSize:  pagination.DefaultPageSize,
			PageSizes: slices.Clone(pagination.PageSizeOptions),
		},
		Images: ImagesConfig{
			BlockedDomains:   slices.Clone(catalog.DefaultBlockedDomains),
			Placeholder:      catalog.DefaultPlaceholder,
			ErrorPlaceholder: catalog.DefaultErrorPlaceholder,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// DefaultDir returns ~/.catalogview, or .catalogview in the working directory when
// the home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DirName
	}
	return filepath.Join(home, DirName)
}

// DefaultPath returns the global config file path, ~/.catalogview/config.yaml.
// Callers resolve $CATALOGVIEW_CONFIG themselves.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFileName)
}

// Load reads the config file at path on top of the defaults. A missing file yields
// the defaults; an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	if err := MergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file %s: %w", path, writeErr)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through lookup
// (os.LookupEnv in production). Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Source.Endpoint = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// Validate checks that the configuration can drive a catalog load.
func (c *Config) Validate() error {
	if c.Source.Endpoint == "" {
		return ErrEmptyEndpoint
	}
	u, err := url.Parse(c.Source.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Source.Endpoint)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeTimeout, c.Source.Timeout)
	}
	if !validPageSize(c.Display.PageSize) {
		return fmt.Errorf("%w: display.page_size is %d", ErrInvalidPageSize, c.Display.PageSize)
	}
	for _, size := range c.Display.PageSizes {
		if !validPageSize(size) {
			return fmt.Errorf("%w: display.page_sizes contains %d", ErrInvalidPageSize, size)
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

// PageSizeOptions returns display.page_sizes sorted ascending without duplicates.
func (c *Config) PageSizeOptions() []int {
	sizes := slices.Clone(c.Display.PageSizes)
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

func validPageSize(n int) bool {
	return n >= pagination.MinPageSize && n <= pagination.MaxPageSize
}

// ImagePolicy returns the image resolver policy described by the images section.
// Empty placeholders fall back to the defaults.
func (c *Config) ImagePolicy() catalog.ImagePolicy {
	policy := catalog.ImagePolicy{
		Blocked:          slices.Clone(c.Images.BlockedDomains),
		Placeholder:      c.Images.Placeholder,
		ErrorPlaceholder: c.Images.ErrorPlaceholder,
	}
	if policy.Placeholder == "" {
		policy.Placeholder = catalog.DefaultPlaceholder
	}
	if policy.ErrorPlaceholder == "" {
		policy.ErrorPlaceholder = catalog.DefaultErrorPlaceholder
	}
	return policy
}

type configKey struct{}

// ContextWithConfig returns a child context carrying cfg.
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or the defaults when there is none.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return New()
}
