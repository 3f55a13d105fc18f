// Package patchfile reads and writes the files the patcher operates on.
package patchfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the file at path as UTF-8 text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// Save writes content to path atomically using temp file + rename. The
// parent directory is created if needed; an existing file keeps its
// permissions.
func Save(path, content string) error {
	parentDir := filepath.Dir(path)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	tempFile, err := os.CreateTemp(parentDir, ".patch-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up temp file in case of error

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	info, _ := os.Stat(path)
	if info != nil {
		_ = os.Chmod(tempPath, info.Mode())
	} else {
		_ = os.Chmod(tempPath, 0644)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("atomic rename failed: %w", err)
	}
	return nil
}

// VersionedPath derives the save path for a patched copy of original.
// The suffix goes between the base name and the extension, gaining a
// leading underscore if it has none. An empty original falls back to
// defaultName inside outputDir; an empty suffix returns the original
// path unchanged.
func VersionedPath(original, suffix, outputDir, defaultName string) string {
	if original == "" {
		return filepath.Join(outputDir, defaultName)
	}
	if suffix == "" {
		return original
	}
	if !strings.HasPrefix(suffix, "_") {
		suffix = "_" + suffix
	}
	dir := filepath.Dir(original)
	name := filepath.Base(original)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		// Dotfiles have no extension, just a name.
		base, ext = name, ""
	}
	return filepath.Join(dir, base+suffix+ext)
}
