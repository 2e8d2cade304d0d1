package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/catalogview/internal/config"
)

// configPaths records where the running command looked for configuration.
type configPaths struct {
	global  string
	project string
}

type configPathsKey struct{}

func contextWithPaths(ctx context.Context, p configPaths) context.Context {
	return context.WithValue(ctx, configPathsKey{}, p)
}

func pathsFromContext(ctx context.Context) configPaths {
	if p, ok := ctx.Value(configPathsKey{}).(configPaths); ok {
		return p
	}
	return configPaths{global: config.DefaultPath()}
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage catalogview configuration",
		Annotations: map[string]string{annotationLenientConfig: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// NewConfigInitCmd creates the config init command. Inside a project that has a
// .catalogview directory (or with --project-dir) it writes the project-local file
// and a .gitignore; otherwise, or with --global, it writes the global file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project with a .catalogview directory, or when --project-dir is given,
the file is written to $PROJECT/.catalogview/config.yaml together with a
.gitignore. Use --global to write ~/.catalogview/config.yaml instead.`,
		Example: `  # Create configuration for the current project or globally
  catalogview config init

  # Create global configuration
  catalogview config init --global

  # Overwrite an existing file
  catalogview config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths := pathsFromContext(cmd.Context())
			if paths.project != "" && !global {
				return initProjectConfig(cmd, paths.project, force)
			}
			return initConfigFile(cmd, paths.global, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")

	return cmd
}

// initProjectConfig writes projectDir/config.yaml and a .gitignore next to it.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, config.ConfigFileName)
	if err := initConfigFile(cmd, configPath, force); err != nil {
		return err
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}
	if created {
		cmd.Printf("Created .gitignore in %s\n", projectDir)
	}
	return nil
}

// initConfigFile saves the default configuration to path.
func initConfigFile(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.New().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("configuration initialized")
	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration after files, environment and flags have been applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  # Show configuration with an endpoint override
  catalogview config show --endpoint http://localhost:8080/products`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2) //nolint:mnd // Two-space YAML indentation.
			if err := enc.Encode(config.FromContext(cmd.Context())); err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads the global and project configuration files, applies environment
overrides and checks the result: the endpoint must be an http(s) URL, the
timeout must not be negative, page sizes must be positive and the logging
level and format must be known.`,
		Example: `  # Validate current configuration
  catalogview config validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			paths := pathsFromContext(ctx)

			if _, err := config.LoadWithProjectDir(ctx, paths.global, paths.project); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if validateErr := config.FromContext(ctx).Validate(); validateErr != nil {
				return fmt.Errorf("configuration validation failed: %w", validateErr)
			}

			cmd.Printf("Configuration is valid\n")
			cmd.Printf("Global file: %s\n", paths.global)
			if paths.project != "" {
				cmd.Printf("Project dir: %s\n", paths.project)
			}
			return nil
		},
	}
}
