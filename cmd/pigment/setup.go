package main

import (
	"context"

	"github.com/Yat-Muk/pigment/internal/application"
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
	infraConfig "github.com/Yat-Muk/pigment/internal/infra/config"
	"github.com/Yat-Muk/pigment/internal/infra/theme"
	"github.com/Yat-Muk/pigment/internal/pkg/appctx"
	"github.com/Yat-Muk/pigment/internal/pkg/version"
	"github.com/Yat-Muk/pigment/internal/tui/handlers"
	"github.com/Yat-Muk/pigment/internal/tui/state"
	"go.uber.org/zap"
)

type AppDependencies struct {
	Log           *zap.Logger
	Paths         *appctx.Paths
	ConfigService *application.ConfigService
	PickerService *application.PickerService
	HandlerConfig *handlers.Config
}

func initializeDependencies(log *zap.Logger, paths *appctx.Paths) (*AppDependencies, error) {
	// ==========================================
	// 1. 基礎設施層 (Infrastructure Layer)
	// ==========================================

	configRepo := infraConfig.NewFileRepository(paths.ConfigFile, log)

	// ==========================================
	// 2. 加載初始配置
	// ==========================================
	initialConfig, err := configRepo.Load(context.Background())
	if err != nil {
		log.Warn("加載配置失敗，使用默認值", zap.Error(err))
		initialConfig = domainConfig.DefaultConfig()
	}

	// 首次啟動時落盤，保證配置文件存在
	if err := configRepo.Save(context.Background(), initialConfig); err != nil {
		log.Warn("初始化保存配置失敗", zap.Error(err))
	}

	// 主題文件充當自定義屬性（CSS 變量）的來源，缺失時視為沒有變量
	// 配置裡指定了路徑就用配置的，留空退回默認位置
	themePath := initialConfig.Theme.File
	if themePath == "" {
		themePath = paths.ThemeFile
	}
	themeRepo := theme.NewRepository(themePath, log)

	// ==========================================
	// 3. 應用服務層 (Application Layer)
	// ==========================================

	configSvc := application.NewConfigService(configRepo, log)
	pickerSvc := application.NewPickerService(initialConfig.Picker, themeRepo, log)

	// ==========================================
	// 4. 狀態管理 (State Management)
	// ==========================================
	stateCfg := &state.Config{
		Log:           log,
		Paths:         paths,
		InitialConfig: initialConfig,
		ScriptVersion: version.Version,
	}
	stateMgr := state.NewManager(stateCfg)

	// ==========================================
	// 5. TUI Handler 配置
	// ==========================================
	handlerCfg := &handlers.Config{
		Log:       log,
		StateMgr:  stateMgr,
		ConfigSvc: configSvc,
		PickerSvc: pickerSvc,
		ThemeRepo: themeRepo,
		Paths:     paths,
	}

	return &AppDependencies{
		Log:           log,
		Paths:         paths,
		ConfigService: configSvc,
		PickerService: pickerSvc,
		HandlerConfig: handlerCfg,
	}, nil
}
