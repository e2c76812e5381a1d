package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler/gradefile/pkg/fs"
)

func TestWriteLines(t *testing.T) {
	fsys := fs.NewOS()
	tmpDir := t.TempDir()

	t.Run("append accumulates lines", func(t *testing.T) {
		path := filepath.Join(tmpDir, "appended.txt")

		require.NoError(t, writeLines(fsys, path, []string{"This is the first line."}, true))
		require.NoError(t, writeLines(fsys, path, []string{"This is the second line."}, true))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "This is the first line.\nThis is the second line.\n", string(data))
	})

	t.Run("replace truncates previous contents", func(t *testing.T) {
		path := filepath.Join(tmpDir, "replaced.txt")

		require.NoError(t, writeLines(fsys, path, []string{"old"}, false))
		require.NoError(t, writeLines(fsys, path, []string{"new"}, false))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(data))
	})

	t.Run("unwritable path surfaces the error", func(t *testing.T) {
		err := writeLines(fsys, filepath.Join(tmpDir, "no", "such", "dir.txt"), []string{"x"}, true)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unable to open")
	})
}

func TestPrintLines(t *testing.T) {
	fsys := fs.NewOS()
	tmpDir := t.TempDir()

	t.Run("prints file contents", func(t *testing.T) {
		path := filepath.Join(tmpDir, "lines.txt")
		require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

		var out bytes.Buffer
		require.NoError(t, printLines(fsys, path, &out))
		assert.Equal(t, "one\ntwo\n", out.String())
	})

	t.Run("missing file surfaces the error", func(t *testing.T) {
		var out bytes.Buffer
		err := printLines(fsys, filepath.Join(tmpDir, "missing.txt"), &out)
		assert.Error(t, err)
		assert.Empty(t, out.String())
	})
}

func TestListDirectory(t *testing.T) {
	fsys := fs.NewOS()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))

	var out bytes.Buffer
	require.NoError(t, listDirectory(fsys, tmpDir, &out))

	assert.Contains(t, out.String(), "File: a.txt")
	assert.Contains(t, out.String(), "Directory: sub")

	t.Run("missing directory surfaces the error", func(t *testing.T) {
		var out bytes.Buffer
		err := listDirectory(fsys, filepath.Join(tmpDir, "nope"), &out)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list directory")
	})
}
