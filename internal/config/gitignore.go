package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// gitignoreContent is the .gitignore written into project-local .catalogview/
// directories.
const gitignoreContent = `# catalogview project-local data (auto-generated)
# Config is tracked; logs are not.
*.log
`

// GitignoreContent returns the .gitignore content used for project-local
// .catalogview/ directories.
func GitignoreContent() string {
	return gitignoreContent
}

// EnsureGitignore writes the project .gitignore into dir, creating dir when needed.
// An existing .gitignore is left alone; the result reports whether a file was written.
func EnsureGitignore(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ".gitignore")
	//nolint:gosec // A .gitignore is meant to be world-readable.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	_, writeErr := f.WriteString(gitignoreContent)
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return false, fmt.Errorf("writing %s: %w", path, writeErr)
	}
	return true, nil
}
