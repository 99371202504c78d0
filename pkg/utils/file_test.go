package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("content"), 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	// Overwrite works and leaves no temp files behind.
	require.NoError(t, WriteFileAtomic(path, []byte("replaced"), 0755))

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".tmp-"), entry.Name())
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	dst := filepath.Join(dir, "sub", "dst.bin")
	require.NoError(t, CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	assert.Error(t, CopyFile(filepath.Join(dir, "missing"), dst))
}

func TestChecksums(t *testing.T) {
	data := []byte("hello world")

	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", BytesSHA1(data))
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", BytesSHA256(data))

	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	assert.Equal(t, BytesSHA1(data), FileSHA1(path))
	assert.Equal(t, "", FileSHA1(path+".missing"))

	sum, err := ReaderSHA1(strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, BytesSHA1(data), sum)
}
