// Package pathutil provides centralized path management for ledger
// database files.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LedgerExtension is the file extension of bozo database files.
const LedgerExtension = ".bozo"

// ErrNoDatabase indicates that no database path was given on the command
// line and none is configured in the environment.
var ErrNoDatabase = errors.New("no database specified")

// ResolveDatabase resolves the database path with flag-over-environment
// precedence: an explicit path wins, otherwise the configured default
// (BOZO_DB) is used, otherwise resolution fails with ErrNoDatabase.
func ResolveDatabase(explicit, configured string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if configured != "" {
		return configured, nil
	}
	return "", fmt.Errorf("%w: use --database or set BOZO_DB", ErrNoDatabase)
}

// LedgerFilePath builds the database file path for init:
// <folder>/<name>.bozo. The folder is not created.
func LedgerFilePath(folder, name string) string {
	return filepath.Join(folder, name+LedgerExtension)
}

// FileExists checks if a file exists.
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsDir checks if a path is a directory.
func IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
