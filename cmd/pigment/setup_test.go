package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Yat-Muk/pigment/internal/pkg/appctx"
	"github.com/Yat-Muk/pigment/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestEnvironment 創建測試用的臨時環境
func setupTestEnvironment(t *testing.T) *appctx.Paths {
	t.Helper()

	paths, err := appctx.NewPaths(t.TempDir())
	require.NoError(t, err, "Failed to create test paths")

	return paths
}

// createTestLogger 創建測試用的 logger
func createTestLogger(t *testing.T) *zap.Logger {
	t.Helper()

	cfg := logger.DefaultConfig()
	cfg.Console = false
	cfg.Level = "debug"
	cfg.OutputPath = filepath.Join(t.TempDir(), "test.log")

	log, err := logger.New(cfg)
	require.NoError(t, err, "Failed to create test logger")

	return log
}

func TestInitializeDependencies_Success(t *testing.T) {
	// Arrange
	paths := setupTestEnvironment(t)
	log := createTestLogger(t)
	defer log.Sync()

	// Act
	deps, err := initializeDependencies(log, paths)

	// Assert
	require.NoError(t, err, "initializeDependencies should not return error")
	assert.NotNil(t, deps, "Dependencies should not be nil")

	// 驗證所有核心依賴都已初始化
	assert.NotNil(t, deps.Log, "Log should be initialized")
	assert.NotNil(t, deps.Paths, "Paths should be initialized")
	assert.NotNil(t, deps.ConfigService, "ConfigService should be initialized")
	assert.NotNil(t, deps.PickerService, "PickerService should be initialized")
	assert.NotNil(t, deps.HandlerConfig, "HandlerConfig should be initialized")

	// 驗證 HandlerConfig 內部依賴
	assert.NotNil(t, deps.HandlerConfig.Log, "HandlerConfig.Log should be initialized")
	assert.NotNil(t, deps.HandlerConfig.StateMgr, "HandlerConfig.StateMgr should be initialized")
	assert.NotNil(t, deps.HandlerConfig.ConfigSvc, "HandlerConfig.ConfigSvc should be initialized")
	assert.NotNil(t, deps.HandlerConfig.PickerSvc, "HandlerConfig.PickerSvc should be initialized")
	assert.NotNil(t, deps.HandlerConfig.ThemeRepo, "HandlerConfig.ThemeRepo should be initialized")
}

func TestInitializeDependencies_SeedsConfigFile(t *testing.T) {
	// Arrange
	paths := setupTestEnvironment(t)
	log := createTestLogger(t)
	defer log.Sync()

	// Act
	_, err := initializeDependencies(log, paths)
	require.NoError(t, err)

	// Assert - 首次啟動時配置文件應被落盤
	info, err := os.Stat(paths.ConfigFile)
	require.NoError(t, err, "config file should be created on first launch")
	assert.Greater(t, info.Size(), int64(0))
}

func TestInitializeDependencies_ConfigLoadFailure(t *testing.T) {
	// Arrange
	paths := setupTestEnvironment(t)
	log := createTestLogger(t)
	defer log.Sync()

	// 創建無效的配置文件
	err := os.WriteFile(paths.ConfigFile, []byte("invalid yaml{{{"), 0644)
	require.NoError(t, err)

	// Act
	deps, err := initializeDependencies(log, paths)

	// Assert
	// 配置加載失敗時應該使用默認配置，所以不應該失敗
	require.NoError(t, err, "Should use default config when load fails")
	assert.NotNil(t, deps, "Dependencies should be initialized with default config")

	cfg := deps.HandlerConfig.StateMgr.Config().Config
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate(), "fallback config should be valid")
}

func TestInitializeDependencies_ThemeVariablesResolved(t *testing.T) {
	// Arrange
	paths := setupTestEnvironment(t)
	log := createTestLogger(t)
	defer log.Sync()

	// 準備主題文件，驗證取色器默認色能走變量解析
	err := os.WriteFile(paths.ThemeFile, []byte("--brand: \"#336699\"\n"), 0644)
	require.NoError(t, err)

	err = os.WriteFile(paths.ConfigFile, []byte(
		"version: 1\npicker:\n  format: hex\n  alpha_enabled: true\n  default_color: \"var(--brand)\"\n",
	), 0644)
	require.NoError(t, err)

	// Act
	deps, err := initializeDependencies(log, paths)
	require.NoError(t, err)

	// Assert
	st := deps.PickerService.State()
	assert.Equal(t, 51, st.R)
	assert.Equal(t, 102, st.G)
	assert.Equal(t, 153, st.B)
}

func TestInitializeDependencies_CustomThemePath(t *testing.T) {
	// Arrange
	paths := setupTestEnvironment(t)
	log := createTestLogger(t)
	defer log.Sync()

	// 主題文件放在配置指定的自定義位置，默認位置保持不存在
	themePath := filepath.Join(t.TempDir(), "palette.yaml")
	err := os.WriteFile(themePath, []byte("--accent: \"#ff8800\"\n"), 0644)
	require.NoError(t, err)

	err = os.WriteFile(paths.ConfigFile, []byte(
		"version: 1\n"+
			"theme:\n  file: \""+themePath+"\"\n"+
			"picker:\n  format: hex\n  alpha_enabled: true\n  default_color: \"var(--accent)\"\n",
	), 0644)
	require.NoError(t, err)

	// Act
	deps, err := initializeDependencies(log, paths)
	require.NoError(t, err)

	// Assert - 變量必須從自定義路徑解析出來
	st := deps.PickerService.State()
	assert.Equal(t, 255, st.R)
	assert.Equal(t, 136, st.G)
	assert.Equal(t, 0, st.B)
}

func TestInitializeDependencies_MultipleInstances(t *testing.T) {
	// Arrange
	paths1 := setupTestEnvironment(t)
	paths2 := setupTestEnvironment(t)

	log := createTestLogger(t)
	defer log.Sync()

	// Act - 創建兩個獨立的依賴實例
	deps1, err1 := initializeDependencies(log, paths1)
	require.NoError(t, err1)

	deps2, err2 := initializeDependencies(log, paths2)
	require.NoError(t, err2)

	// Assert
	assert.NotEqual(t, deps1.Paths, deps2.Paths, "Paths should be different instances")
	assert.Equal(t, deps1.Log, deps2.Log, "Logger can be shared")
}

func TestInitializeDependencies_ConfigServiceRoundTrip(t *testing.T) {
	// Arrange
	paths := setupTestEnvironment(t)
	log := createTestLogger(t)
	defer log.Sync()

	deps, err := initializeDependencies(log, paths)
	require.NoError(t, err)

	ctx := context.Background()

	// Act - 通過服務層修改配置並重新讀取
	err = deps.ConfigService.SetDefaultColor(ctx, "tomato")
	require.NoError(t, err)

	cfg, err := deps.ConfigService.GetConfig(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "tomato", cfg.Picker.DefaultColor)
}

func TestRedirectStdErr_FileCreation(t *testing.T) {
	// Arrange
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "test-stderr.log")

	// Act
	redirectStdErr(logFile)

	// Assert - 驗證文件被創建
	info, err := os.Stat(logFile)
	assert.NoError(t, err, "Stderr log file should be created")
	assert.NotNil(t, info, "File info should not be nil")
}
