package state

import (
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
	"github.com/Yat-Muk/pigment/internal/pkg/appctx"
	"go.uber.org/zap"
)

// Config 初始化配置
type Config struct {
	Log           *zap.Logger
	InitialConfig *domainConfig.Config
	ScriptVersion string
	Paths         *appctx.Paths
}

// Manager 狀態管理器 (State Container)
type Manager struct {
	log *zap.Logger

	// 各個子狀態模塊
	ui      *UIState
	picker  *PickerState
	swatch  *SwatchState
	theme   *ThemeState
	event   *EventState
	config  *ConfigState
	version string

	paths *appctx.Paths
}

// NewManager 創建狀態管理器
func NewManager(cfg *Config) *Manager {
	m := &Manager{
		log:     cfg.Log,
		paths:   cfg.Paths,
		version: cfg.ScriptVersion,
	}

	m.ui = NewUIState()
	m.picker = NewPickerState()
	m.swatch = NewSwatchState()
	m.theme = NewThemeState()
	m.event = NewEventState()
	m.config = NewConfigState(cfg.InitialConfig)

	return m
}

// Getters 訪問器

func (m *Manager) UI() *UIState         { return m.ui }
func (m *Manager) Picker() *PickerState { return m.picker }
func (m *Manager) Swatch() *SwatchState { return m.swatch }
func (m *Manager) Theme() *ThemeState   { return m.theme }
func (m *Manager) Event() *EventState   { return m.event }
func (m *Manager) Config() *ConfigState { return m.config }
func (m *Manager) Version() string      { return m.version }
