package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limeal.fr/vlauncher/pkg/connectors"
)

func TestPublishUploadsInstallRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "versions", "1.20.1"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "versions", "1.20.1", "1.20.1.jar"), []byte("client"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "launch.sh"), []byte("#!/bin/sh\n"), 0755))

	remote := t.TempDir()
	connector := &connectors.FileConnector{Path: remote}

	var lastCurrent, lastTotal int64
	err := Publish(root, connector, func(current int64, total int64, description string) {
		lastCurrent, lastTotal = current, total
	})
	require.NoError(t, err)
	assert.Equal(t, lastTotal, lastCurrent)

	uploaded, err := os.ReadFile(filepath.Join(remote, "versions", "1.20.1", "1.20.1.jar"))
	require.NoError(t, err)
	assert.Equal(t, []byte("client"), uploaded)

	_, err = os.Stat(filepath.Join(remote, "launch.sh"))
	assert.NoError(t, err)
}

func TestPublishSkipsUpToDateFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.jar"), []byte("same"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.jar"), []byte("changed"), 0644))

	remote := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(remote, "a.jar"), []byte("same"), 0644))
	stale := filepath.Join(remote, "b.jar")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	before, err := os.Stat(filepath.Join(remote, "a.jar"))
	require.NoError(t, err)

	connector := &connectors.FileConnector{Path: remote}
	require.NoError(t, Publish(root, connector, nil))

	after, err := os.Stat(filepath.Join(remote, "a.jar"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())

	updated, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, []byte("changed"), updated)
}
