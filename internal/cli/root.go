// Package cli implements the catalogview command tree.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/logging"
)

// Command annotations read by the root pre-run.
const (
	// annotationInteractive marks commands that may take over the terminal, so their
	// logs must stay off stderr.
	annotationInteractive = "catalogview/interactive"
	// annotationLenientConfig marks commands that still run when the config file
	// cannot be loaded, falling back to defaults.
	annotationLenientConfig = "catalogview/lenient-config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	projectDir string
	endpoint   string
	timeout    time.Duration
	debug      bool
}

// NewRootCmd creates the root Cobra command for the catalogview CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for
// testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		flags     rootFlags
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:           "catalogview",
		Short:         "Browse a remote product catalog",
		Long:          "catalogview fetches a product list from a REST endpoint and shows it as a searchable, sortable, paginated table.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags, lookupEnv)
			if err != nil {
				return err
			}
			result := setupLogging(cmd, cfg, flags.debug)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $CATALOGVIEW_CONFIG or ~/.catalogview/config.yaml)")
	pf.StringVar(&flags.projectDir, "project-dir", "", "project directory holding .catalogview/config.yaml")
	pf.StringVar(&flags.endpoint, "endpoint", "", "product list URL (overrides config and $CATALOGVIEW_ENDPOINT)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "request timeout, e.g. 10s (0 = none)")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(NewBrowseCmd(), NewListCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse the catalog interactively
  catalogview browse

  # Print page 2 of products matching "shirt", cheapest first
  catalogview list --search shirt --sort price --page 2

  # Export the first 20 products as a static HTML page
  catalogview list --page-size 20 --output html > catalog.html

  # Use a different endpoint
  catalogview list --endpoint http://localhost:8080/products --output json

  # Write a default configuration file
  catalogview config init`

// resolveConfig builds the effective configuration: defaults, global file, project
// file, environment, then flags. The result is validated and stored in the command
// context.
func resolveConfig(
	cmd *cobra.Command,
	flags rootFlags,
	lookupEnv func(string) (string, bool),
) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		if envPath, ok := lookupEnv(config.EnvConfig); ok && envPath != "" {
			path = envPath
		} else {
			path = config.DefaultPath()
		}
	}

	ctx := cmd.Context()
	wd, _ := os.Getwd()
	projectDir := config.ResolveProjectDir(ctx, flags.projectDir, wd)

	cfg, err := config.LoadWithProjectDir(ctx, path, projectDir)
	if err != nil {
		if !lenientConfig(cmd) {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		cmd.PrintErrf("Warning: %v; using defaults\n", err)
		cfg = config.New()
	}

	cfg.ApplyEnv(lookupEnv)
	if flags.endpoint != "" {
		cfg.Source.Endpoint = flags.endpoint
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Source.Timeout = flags.timeout
	}

	if validateErr := cfg.Validate(); validateErr != nil && !lenientConfig(cmd) {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = contextWithPaths(ctx, configPaths{global: path, project: projectDir})
	cmd.SetContext(ctx)
	return cfg, nil
}

func lenientConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationLenientConfig]; ok {
			return true
		}
	}
	return false
}

// ExitError carries a process exit code for main.
type ExitError struct {
	Code int
	Err  error
}

// Exit codes.
const (
	ExitGeneral     = 1
	ExitLoadFailure = 2
)

// Error implements error.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: the code of a wrapped *ExitError, 0 for
// nil, ExitGeneral otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}
