package appctx

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths 定義應用程序所有的關鍵路徑
type Paths struct {
	BaseDir   string
	ConfigDir string
	DataDir   string
	LogDir    string

	ConfigFile string
	ThemeFile  string
}

func NewPaths(baseDir string) (*Paths, error) {
	if baseDir == "" {
		if isProduction() {
			baseDir = "/etc/pigment"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("無法獲取用戶主目錄: %w", err)
			}
			baseDir = filepath.Join(home, ".pigment")
		}
	}

	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("無法解析絕對路徑: %w", err)
	}

	configDir := absPath
	dataDir := filepath.Join(absPath, "data")
	configFile := filepath.Join(configDir, "config.yaml")
	themeFile := filepath.Join(configDir, "theme.yaml")

	// 日誌目錄邏輯
	logDir := filepath.Join(absPath, "logs")
	if isProduction() {
		logDir = "/var/log/pigment"
	}

	paths := &Paths{
		BaseDir:    absPath,
		ConfigDir:  configDir,
		DataDir:    dataDir,
		LogDir:     logDir,
		ConfigFile: configFile,
		ThemeFile:  themeFile,
	}

	// 確保目錄存在
	dirs := []string{
		paths.ConfigDir,
		paths.DataDir,
		paths.LogDir,
	}

	for _, dir := range dirs {
		perm := os.FileMode(0700)
		if dir == paths.LogDir {
			perm = 0755
		}
		if err := os.MkdirAll(dir, perm); err != nil {
			return nil, fmt.Errorf("無法創建目錄 %s: %w", dir, err)
		}
	}

	return paths, nil
}

func isProduction() bool {
	return os.Geteuid() == 0 || os.Getenv("PIGMENT_ENV") == "production"
}
