package cmd

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler/gradefile/pkg/codec"
	"github.com/mkessler/gradefile/pkg/fs"
	"github.com/mkessler/gradefile/pkg/studentfile"
)

func TestParseStudent(t *testing.T) {
	t.Run("valid arguments", func(t *testing.T) {
		student, err := parseStudent("101", "Alice Smith", "3.85")
		require.NoError(t, err)
		assert.Equal(t, codec.Student{ID: 101, Name: "Alice Smith", GPA: 3.85}, *student)
	})

	t.Run("negative id", func(t *testing.T) {
		student, err := parseStudent("-1", "Bob", "2.0")
		require.NoError(t, err)
		assert.Equal(t, int32(-1), student.ID)
	})

	t.Run("id out of 32-bit range", func(t *testing.T) {
		_, err := parseStudent("4294967296", "Too Big", "2.0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid id")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, err := parseStudent("abc", "Bad", "2.0")
		assert.Error(t, err)
	})

	t.Run("non-numeric gpa", func(t *testing.T) {
		_, err := parseStudent("1", "Bad", "high")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid gpa")
	})

	t.Run("NaN gpa parses", func(t *testing.T) {
		student, err := parseStudent("1", "NaN", "NaN")
		require.NoError(t, err)
		assert.True(t, math.IsNaN(student.GPA))
	})
}

func TestVerifySaved(t *testing.T) {
	store := studentfile.NewStore(fs.NewOS())
	tmpDir := t.TempDir()

	t.Run("matching record passes", func(t *testing.T) {
		path := filepath.Join(tmpDir, "ok.student")
		student := codec.Student{ID: 101, Name: "Alice Smith", GPA: 3.85}

		require.NoError(t, store.Save(path, student))
		assert.NoError(t, verifySaved(store, path, student))
	})

	t.Run("NaN gpa still verifies", func(t *testing.T) {
		path := filepath.Join(tmpDir, "nan.student")
		student := codec.Student{ID: 2, Name: "NaN", GPA: math.NaN()}

		require.NoError(t, store.Save(path, student))
		assert.NoError(t, verifySaved(store, path, student))
	})

	t.Run("mismatched record fails", func(t *testing.T) {
		path := filepath.Join(tmpDir, "mismatch.student")

		require.NoError(t, store.Save(path, codec.Student{ID: 1, Name: "A", GPA: 1.0}))
		err := verifySaved(store, path, codec.Student{ID: 2, Name: "A", GPA: 1.0})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "read-back mismatch")
	})

	t.Run("missing file fails", func(t *testing.T) {
		err := verifySaved(store, filepath.Join(tmpDir, "missing.student"), codec.Student{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "read-back failed")
	})
}
