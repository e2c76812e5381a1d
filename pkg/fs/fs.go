// Package fs provides the filesystem abstraction consumed by gradefile.
//
// The main types are:
//   - FS: interface for filesystem operations
//   - File: interface for open files, satisfied by *os.File
//   - OS: production implementation backed by the os package
//
// Record encoding and decoding never touch FS directly; it exists so the
// pieces that do open, list, rename and remove files can be exercised
// against any backing implementation.
package fs

import (
	"io"
	"os"
)

// File represents an open file handle.
//
// The interface is satisfied by *os.File and works with every standard
// library helper that accepts io.Reader, io.Writer or io.Closer.
type File interface {
	io.ReadWriteCloser

	// Stat returns the os.FileInfo for this file. See os.File.Stat.
	Stat() (os.FileInfo, error)

	// Sync commits the file's contents to disk. See os.File.Sync.
	Sync() error
}

// FS defines the filesystem operations gradefile needs: existence
// checks, directory creation and listing, file open in its three modes,
// rename and removal.
//
// All methods mirror their os package equivalents and keep their error
// semantics.
type FS interface {
	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)

	// Stat returns file info. See os.Stat.
	Stat(path string) (os.FileInfo, error)

	// MkdirAll creates a directory and all parents. See os.MkdirAll.
	// No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Open opens a file for reading. See os.Open.
	Open(path string) (File, error)

	// Create creates or truncates a file for writing. See os.Create.
	Create(path string) (File, error)

	// OpenAppend opens a file for appending, creating it if needed.
	OpenAppend(path string) (File, error)

	// ReadDir reads a directory and returns its entries sorted by name.
	// See os.ReadDir.
	ReadDir(path string) ([]os.DirEntry, error)

	// Rename moves/renames a file or directory. See os.Rename.
	Rename(oldpath, newpath string) error

	// Remove deletes a file or empty directory. See os.Remove.
	Remove(path string) error

	// RemoveAll deletes a path and any children. See os.RemoveAll.
	// No error if the path does not exist.
	RemoveAll(path string) error
}

// Compile-time interface check.
var _ File = (*os.File)(nil)
