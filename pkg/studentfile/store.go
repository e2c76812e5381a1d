// Package studentfile persists one encoded student record per file.
package studentfile

import (
	"bufio"
	"fmt"

	"github.com/mkessler/gradefile/pkg/codec"
	"github.com/mkessler/gradefile/pkg/fs"
)

// Store reads and writes single-record student files on top of a
// filesystem abstraction. A file holds exactly one encoded record;
// anything past it is ignored on load.
type Store struct {
	fs    fs.FS
	codec *codec.StudentCodec
}

// NewStore creates a store over the given filesystem
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fs:    fsys,
		codec: codec.NewStudentCodec(),
	}
}

// Save encodes a student record into the file at path, replacing any
// previous contents. The file handle is released on every exit path.
func (s *Store) Save(path string, student codec.Student) error {
	f, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}

	writer := bufio.NewWriter(f)
	if err := s.codec.EncodeTo(writer, student); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := writer.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}

	return f.Close()
}

// Load decodes the student record stored in the file at path.
//
// A file shorter than one full record fails with codec.ErrTruncated;
// open and read failures surface unchanged. No partial record is
// returned.
func (s *Store) Load(path string) (*codec.Student, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for reading: %w", path, err)
	}
	defer f.Close()

	student, err := s.codec.DecodeFrom(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return student, nil
}
