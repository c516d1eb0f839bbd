package run

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+-[a-z]+-\d{8}-\d{6}$`)
	for i := 0; i < 20; i++ {
		id := GenerateID()
		assert.Regexp(t, pattern, id)
	}
}

func TestCreateDirectory(t *testing.T) {
	assert := assert.New(t)
	base := t.TempDir()
	logger := log.New(io.Discard)

	dir, err := CreateDirectory(base, logger)
	require.NoError(t, err)

	assert.True(filepath.IsAbs(dir.Path))
	assert.Equal(filepath.Join(base, RendersDir, dir.ID), dir.Path)
	info, err := os.Stat(dir.Path)
	require.NoError(t, err)
	assert.True(info.IsDir())

	target, err := os.Readlink(filepath.Join(base, RendersDir, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(dir.ID, target)

	assert.Equal(filepath.Join(dir.Path, "frame.png"), dir.FilePath("frame.png"))
}

func TestCopyConfigFile(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "scene.yaml")
	require.NoError(t, os.WriteFile(src, []byte("camera: {fov: 40}\n"), 0644))

	dir, err := CreateDirectory(base, log.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, dir.CopyConfigFile(src))

	got, err := os.ReadFile(dir.FilePath("scene.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "camera: {fov: 40}\n", string(got))

	assert.Error(t, dir.CopyConfigFile(filepath.Join(base, "missing.yaml")))
}
