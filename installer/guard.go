package installer

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for the two fatal directory-guard
// failures. Callers branch on these with errors.Is.
var (
	// ErrDirNotEmpty reports that the install target
	// contains entries other than dot markers.
	ErrDirNotEmpty = errors.New(
		"install directory is not empty",
	)

	// ErrDirAccess reports that the install target could
	// not be listed.
	ErrDirAccess = errors.New(
		"install directory is not accessible",
	)
)

// CheckEmptyDir verifies that the directory at path holds
// no entries besides names consisting only of dot
// characters (current/parent markers). Dotfiles such as
// ".git" count as content. The check is advisory: nothing
// prevents another process from populating the directory
// after it passes.
func CheckEmptyDir(path string) error {
	const errCtx = "checking install directory"

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf(
			"%s: %w: %w", errCtx, ErrDirAccess, err,
		)
	}

	for _, en := range entries {
		if strings.Trim(en.Name(), ".") == "" {
			continue
		}

		return fmt.Errorf(
			"%s: %w: found %q in %s",
			errCtx, ErrDirNotEmpty, en.Name(), path,
		)
	}

	return nil
}
