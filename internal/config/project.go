package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/catalogview/internal/logging"
)

// ResolveProjectDir determines the project-local .catalogview directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. CATALOGVIEW_PROJECT_DIR env var
//  3. walking up from startDir to the first directory containing .catalogview/
//
// Returns the path to $PROJECT/.catalogview/ or empty string if no project found.
// The global ~/.catalogview directory is never treated as a project directory.
// Does NOT create the directory. Returned path is always absolute (or empty).
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	found, err := findProjectDir(startDir)
	if err != nil {
		return ""
	}
	if filepath.Clean(found) == filepath.Clean(DefaultDir()) {
		return ""
	}
	return found
}

// findProjectDir walks up from startDir looking for a .catalogview directory.
func findProjectDir(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, DirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// LoadWithProjectDir loads the global config at globalPath and merges the
// project-local config from projectDir on top. An empty projectDir or a missing
// project config file leaves the global result unchanged; a malformed project
// config is logged and skipped.
func LoadWithProjectDir(ctx context.Context, globalPath, projectDir string) (*Config, error) {
	cfg, err := Load(globalPath)
	if err != nil {
		return nil, err
	}

	if projectDir == "" {
		return cfg, nil
	}

	overlayPath := filepath.Join(projectDir, ConfigFileName)
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		if !errors.Is(statErr, os.ErrNotExist) {
			logging.FromContext(ctx).Warn().Ctx(ctx).
				Str("component", "config").
				Err(statErr).
				Str("overlay_path", overlayPath).
				Msg("cannot stat project config")
		}
		return cfg, nil
	}

	merged := *cfg
	if mergeErr := MergeYAML(&merged, overlayPath); mergeErr != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(mergeErr).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global config")
		return cfg, nil
	}

	return &merged, nil
}

// toAbsProjectDir converts dir to an absolute path and appends ".catalogview".
// If the path already ends with ".catalogview", it is returned as-is (after
// resolving to an absolute path) to prevent double-append.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == DirName {
		return abs
	}

	return filepath.Join(abs, DirName)
}
