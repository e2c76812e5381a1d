package fs

import (
	"os"
)

const appendPerm = 0o644

// OS implements FS using the real filesystem.
//
// All methods are passthroughs to the os package with identical behavior
// and error semantics, except Exists which wraps os.Stat.
type OS struct{}

// NewOS returns a new OS filesystem.
func NewOS() *OS {
	return &OS{}
}

// Exists checks if a path exists using os.Stat.
// Returns (true, nil) if it exists, (false, nil) if it does not, or
// (false, err) for other errors.
func (o *OS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// A passthrough wrapper for os.Stat.
func (o *OS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// A passthrough wrapper for os.MkdirAll.
func (o *OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// A passthrough wrapper for os.Open.
func (o *OS) Open(path string) (File, error) {
	return os.Open(path)
}

// A passthrough wrapper for os.Create.
func (o *OS) Create(path string) (File, error) {
	return os.Create(path)
}

// OpenAppend opens path for appending, creating it if needed.
func (o *OS) OpenAppend(path string) (File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, appendPerm)
}

// A passthrough wrapper for os.ReadDir.
func (o *OS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// A passthrough wrapper for os.Rename.
func (o *OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// A passthrough wrapper for os.Remove.
func (o *OS) Remove(path string) error {
	return os.Remove(path)
}

// A passthrough wrapper for os.RemoveAll.
func (o *OS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
