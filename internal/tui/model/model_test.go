package model

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/application"
	"github.com/Yat-Muk/pigment/internal/domain/color"
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
	infraConfig "github.com/Yat-Muk/pigment/internal/infra/config"
	"github.com/Yat-Muk/pigment/internal/infra/theme"
	"github.com/Yat-Muk/pigment/internal/tui/constants"
	"github.com/Yat-Muk/pigment/internal/tui/handlers"
	"github.com/Yat-Muk/pigment/internal/tui/msg"
	"github.com/Yat-Muk/pigment/internal/tui/state"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

// setupTestRouter 初始化測試用的 Router
func setupTestRouter(t *testing.T) *Router {
	t.Helper()

	logger := zap.NewNop()
	dir := t.TempDir()
	defaultCfg := domainConfig.DefaultConfig()

	stateMgr := state.NewManager(&state.Config{
		Log:           logger,
		InitialConfig: defaultCfg,
		ScriptVersion: "test",
	})
	stateMgr.UI().ConfigLoadState = state.ConfigLoaded

	repo := infraConfig.NewFileRepository(filepath.Join(dir, "config.yaml"), logger)
	themeRepo := theme.NewRepository(filepath.Join(dir, "theme.yaml"), logger)

	handlerCfg := &handlers.Config{
		Log:       logger,
		StateMgr:  stateMgr,
		ConfigSvc: application.NewConfigService(repo, logger),
		PickerSvc: application.NewPickerService(defaultCfg.Picker, themeRepo, logger),
		ThemeRepo: themeRepo,
	}

	return NewRouter(handlerCfg)
}

// TestRouter_Init 測試初始化命令
func TestRouter_Init(t *testing.T) {
	r := setupTestRouter(t)

	cmd := r.InitModel()
	if cmd == nil {
		t.Error("InitModel should return initial commands")
	}
}

// TestRouter_Update_KeyMsg 測試按鍵消息路由
func TestRouter_Update_KeyMsg(t *testing.T) {
	r := setupTestRouter(t)

	if r.stateMgr.UI().CurrentView != state.MainMenuView {
		t.Errorf("Expected initial view MainMenuView, got %v", r.stateMgr.UI().CurrentView)
	}

	r.stateMgr.UI().TextInput.SetValue(constants.KeyMain_Format)
	r.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if r.stateMgr.UI().CurrentView != state.FormatMenuView {
		t.Errorf("Expected view transition to FormatMenuView, got %v", r.stateMgr.UI().CurrentView)
	}
}

// TestRouter_Update_PickerEvent 事件消息寫入記錄並重新訂閱
func TestRouter_Update_PickerEvent(t *testing.T) {
	r := setupTestRouter(t)

	ev := application.Event{
		Instance: "test",
		Type:     application.EventChange,
		Value:    "#ff0000",
		Color:    color.RGBA{R: 255, A: 1},
		At:       time.Now(),
	}
	_, cmd := r.Update(msg.PickerEventMsg{Event: ev})

	rows := r.stateMgr.Event().Rows()
	if len(rows) != 1 || rows[0].Type != "change" {
		t.Fatalf("event not recorded: %+v", rows)
	}
	if cmd == nil {
		t.Error("expected re-subscription command")
	}
}

// TestRouter_Update_ThemeLoaded 主題變量消息
func TestRouter_Update_ThemeLoaded(t *testing.T) {
	r := setupTestRouter(t)

	r.Update(msg.ThemeLoadedMsg{Rows: []types.ThemeVarRow{
		{Name: "--brand", Value: "#336699", Color: color.RGBA{R: 51, G: 102, B: 153, A: 1}, IsColor: true},
	}})

	if len(r.stateMgr.Theme().Rows) != 1 {
		t.Error("theme rows not stored")
	}
	if !r.stateMgr.Theme().Loaded {
		t.Error("theme should be marked loaded")
	}
}

// TestRouter_View 測試渲染函數防崩潰
func TestRouter_View(t *testing.T) {
	r := setupTestRouter(t)

	defer func() {
		if rec := recover(); rec != nil {
			t.Errorf("View() panicked: %v", rec)
		}
	}()

	output := r.View()
	if len(output) == 0 {
		t.Error("View() returned empty string")
	}
	if !strings.Contains(output, "取色器") {
		t.Error("main menu should mention the picker entry")
	}
}

// TestRouter_View_AllViews 每個視圖都能渲染
func TestRouter_View_AllViews(t *testing.T) {
	r := setupTestRouter(t)

	views := []state.View{
		state.MainMenuView,
		state.PickerView,
		state.ColorInputView,
		state.SwatchMenuView,
		state.FormatMenuView,
		state.ThemeVarsView,
		state.EventLogView,
	}

	for _, v := range views {
		r.stateMgr.UI().SwitchView(v)
		if out := r.View(); len(out) == 0 {
			t.Errorf("view %v rendered empty output", v)
		}
	}
}

// TestRouter_WindowSize 測試窗口調整消息
func TestRouter_WindowSize(t *testing.T) {
	r := setupTestRouter(t)

	r.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	if r.stateMgr.UI().Width != 100 || r.stateMgr.UI().Height != 50 {
		t.Errorf("UI dimensions not updated. Got %dx%d", r.stateMgr.UI().Width, r.stateMgr.UI().Height)
	}
}
