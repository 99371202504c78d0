package utils

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := writer.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	path := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestExtractZip(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"bin/java":    "binary",
		"lib/modules": "modules",
	})

	dest := t.TempDir()
	require.NoError(t, ExtractZip(archive, dest))

	content, err := os.ReadFile(filepath.Join(dest, "bin", "java"))
	require.NoError(t, err)
	assert.Equal(t, "binary", string(content))

	content, err = os.ReadFile(filepath.Join(dest, "lib", "modules"))
	require.NoError(t, err)
	assert.Equal(t, "modules", string(content))
}

func TestExtractZipExtensionFilter(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"liblwjgl.so":  "keep",
		"lwjgl.dll":    "drop",
		"README":       "drop",
		"nested/x.so":  "keep",
		"nested/x.txt": "drop",
	})

	dest := t.TempDir()
	require.NoError(t, ExtractZip(archive, dest, "so"))

	for _, kept := range []string{"liblwjgl.so", "nested/x.so"} {
		_, err := os.Stat(filepath.Join(dest, filepath.FromSlash(kept)))
		assert.NoError(t, err, kept)
	}
	for _, dropped := range []string{"lwjgl.dll", "README", "nested/x.txt"} {
		_, err := os.Stat(filepath.Join(dest, filepath.FromSlash(dropped)))
		assert.True(t, os.IsNotExist(err), dropped)
	}
}

func TestExtractZipOverwrites(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "file.txt"), []byte("old"), 0644))

	archive := writeZip(t, map[string]string{"file.txt": "new"})
	require.NoError(t, ExtractZip(archive, dest))

	content, err := os.ReadFile(filepath.Join(dest, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestExtractZipRejectsEscapingEntries(t *testing.T) {
	archive := writeZip(t, map[string]string{"../escape.txt": "evil"})

	dest := t.TempDir()
	assert.Error(t, ExtractZip(archive, dest))
}
