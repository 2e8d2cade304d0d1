package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/pagination"
)

// writeConfig is a test helper that writes YAML content to dir/name and returns
// its path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, catalog.DefaultEndpoint, cfg.Source.Endpoint)
	assert.Zero(t, cfg.Source.Timeout)
	assert.Equal(t, pagination.DefaultPageSize, cfg.Display.PageSize)
	assert.Equal(t, []int{5, 10, 20, 50}, cfg.Display.PageSizes)
	assert.Equal(t, catalog.DefaultBlockedDomains, cfg.Images.BlockedDomains)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Logging.Format)
	require.NoError(t, cfg.Validate())

	cfg.Images.BlockedDomains[0] = "changed"
	assert.Equal(t, "placeimg.com", catalog.DefaultBlockedDomains[0], "defaults are copied")
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("partial section keeps other fields", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", `
source:
  timeout: 5s
display:
  page_size: 20
images:
  blocked_domains: [bad.example]
unknown_section:
  ignored: true
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, catalog.DefaultEndpoint, cfg.Source.Endpoint)
		assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
		assert.Equal(t, 20, cfg.Display.PageSize)
		assert.Equal(t, []int{5, 10, 20, 50}, cfg.Display.PageSizes)
		assert.Equal(t, []string{"bad.example"}, cfg.Images.BlockedDomains, "lists are replaced whole")
		assert.Equal(t, catalog.DefaultPlaceholder, cfg.Images.Placeholder)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("comment-only file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", "# nothing here\n")
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", "source: [unclosed\n")
		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("wrong type in section", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", "display:\n  page_size: lots\n")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"display"`)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Source.Timeout = 30 * time.Second
	cfg.Logging.File = "/tmp/catalogview.log"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 30s")
	assert.Contains(t, string(data), "page_size: 10")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvEndpoint:  "http://localhost:8080/products",
		config.EnvLogLevel:  "debug",
		config.EnvLogFormat: "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := config.New()
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "http://localhost:8080/products", cfg.Source.Endpoint)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Logging.Format, "empty values are ignored")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{
			name:    "empty endpoint",
			mutate:  func(c *config.Config) { c.Source.Endpoint = "" },
			wantErr: config.ErrEmptyEndpoint,
		},
		{
			name:    "ftp endpoint",
			mutate:  func(c *config.Config) { c.Source.Endpoint = "ftp://example.com/products" },
			wantErr: config.ErrInvalidEndpoint,
		},
		{
			name:    "not a url",
			mutate:  func(c *config.Config) { c.Source.Endpoint = "products.json" },
			wantErr: config.ErrInvalidEndpoint,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *config.Config) { c.Source.Timeout = -time.Second },
			wantErr: config.ErrNegativeTimeout,
		},
		{
			name:    "zero page size",
			mutate:  func(c *config.Config) { c.Display.PageSize = 0 },
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "page size above maximum",
			mutate:  func(c *config.Config) { c.Display.PageSize = pagination.MaxPageSize + 1 },
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:   "maximum page size",
			mutate: func(c *config.Config) { c.Display.PageSize = pagination.MaxPageSize },
		},
		{
			name:    "page size option above maximum",
			mutate:  func(c *config.Config) { c.Display.PageSizes = []int{5, 2000} },
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "negative page size option",
			mutate:  func(c *config.Config) { c.Display.PageSizes = []int{5, -1} },
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantErr: config.ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("bad log level", func(t *testing.T) {
		cfg := config.New()
		cfg.Logging.Level = "loud"
		assert.Error(t, cfg.Validate())
	})
}

func TestImagePolicy(t *testing.T) {
	cfg := config.New()
	cfg.Images.BlockedDomains = []string{"bad.example"}
	cfg.Images.Placeholder = ""

	policy := cfg.ImagePolicy()
	assert.Equal(t, []string{"bad.example"}, policy.Blocked)
	assert.Equal(t, catalog.DefaultPlaceholder, policy.Placeholder)
	assert.Equal(t, catalog.DefaultErrorPlaceholder, policy.ErrorPlaceholder)
	assert.Equal(t, catalog.DefaultPlaceholder, policy.Resolve([]string{"http://bad.example/x.jpg"}))
}

func TestPageSizeOptions(t *testing.T) {
	cfg := config.New()
	cfg.Display.PageSizes = []int{25, 5, 25, 100}
	assert.Equal(t, []int{5, 25, 100}, cfg.PageSizeOptions())
	assert.Equal(t, []int{25, 5, 25, 100}, cfg.Display.PageSizes, "config is not modified")
}

func TestContextWithConfig(t *testing.T) {
	cfg := config.New()
	cfg.Display.PageSize = 50

	ctx := config.ContextWithConfig(context.Background(), cfg)
	assert.Same(t, cfg, config.FromContext(ctx))
	assert.Equal(t, config.New(), config.FromContext(context.Background()))
}

func TestDefaultPath(t *testing.T) {
	want := filepath.Join(config.DefaultDir(), config.ConfigFileName)
	assert.Equal(t, want, config.DefaultPath())

	t.Setenv(config.EnvConfig, "/etc/catalogview.yaml")
	assert.Equal(t, want, config.DefaultPath(), "environment is resolved by the caller")
}

func TestLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: logging.FormatJSON}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)
	assert.Equal(t, logging.FormatJSON, got.Format)
	assert.Equal(t, logging.OutputDiscard, lc.ToInteractiveLoggingConfig().Output)

	lc.File = "/var/log/catalogview.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/catalogview.log", got.File)
	assert.Equal(t, logging.OutputFile, lc.ToInteractiveLoggingConfig().Output)
}
