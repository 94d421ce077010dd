package appctx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	tmpDir := t.TempDir()

	paths, err := NewPaths(tmpDir)
	require.NoError(t, err)

	assert.NotNil(t, paths)
	assert.Equal(t, tmpDir, paths.BaseDir)
	assert.Equal(t, filepath.Join(tmpDir, "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(tmpDir, "theme.yaml"), paths.ThemeFile)
}

func TestPaths_Directories(t *testing.T) {
	tmpDir := t.TempDir()

	paths, err := NewPaths(tmpDir)
	require.NoError(t, err)

	// 驗證目錄路徑不為空
	assert.NotEmpty(t, paths.ConfigDir)
	assert.NotEmpty(t, paths.DataDir)

	// 驗證目錄已創建
	assert.DirExists(t, paths.ConfigDir)
	assert.DirExists(t, paths.DataDir)
	assert.DirExists(t, paths.LogDir)
}
