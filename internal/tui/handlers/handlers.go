package handlers

import (
	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/application"
	"github.com/Yat-Muk/pigment/internal/infra/theme"
	"github.com/Yat-Muk/pigment/internal/pkg/appctx"
	"github.com/Yat-Muk/pigment/internal/tui/state"
)

// Config 用於初始化 Handlers 的配置結構體
type Config struct {
	Log       *zap.Logger
	StateMgr  *state.Manager
	ConfigSvc *application.ConfigService
	PickerSvc *application.PickerService
	ThemeRepo *theme.Repository
	Paths     *appctx.Paths
}
