// Package ioutils provides file system utilities for the sticker generator.
//
// This package contains functions for:
//   - File writing
//   - Directory creation
//   - Existence checks used by the output guard
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (checked before writing)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "out/Mehr/۰۱.png", pngData)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/stickers/out/Mehr")
//	// Creates /stickers, /stickers/out, and /stickers/out/Mehr if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// EnsureFolder creates a single directory whose parent must exist.
//
// It reports whether the directory was created. A directory that already
// exists is not an error and returns created == false, so callers can log
// it and carry on.
//
// Example:
//
//	created, err := EnsureFolder("out/Farvardin")
//	if err == nil && !created {
//	    log.Println("Farvardin already exists")
//	}
func EnsureFolder(path string) (created bool, err error) {
	err = os.Mkdir(path, 0755)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrExist) {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return false, nil
		}
	}
	return false, err
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
