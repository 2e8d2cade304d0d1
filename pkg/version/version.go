// Package version reports the catalogview build version.
package version

import "github.com/Masterminds/semver/v3"

// DevVersion is reported when the build carries no valid version.
const DevVersion = "0.0.0-dev"

// These are set at build time with -ldflags "-X".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the build version in canonical semver form without a leading
// "v". An empty or invalid build version yields DevVersion.
func GetVersion() string {
	return normalize(version)
}

// GetGitCommit returns the commit the binary was built from, or "unknown".
func GetGitCommit() string {
	if gitCommit == "" {
		return "unknown"
	}
	return gitCommit
}

// GetBuildDate returns the build timestamp, or "unknown".
func GetBuildDate() string {
	if buildDate == "" {
		return "unknown"
	}
	return buildDate
}

func normalize(raw string) string {
	if raw == "" {
		return DevVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return DevVersion
	}
	return v.String()
}
