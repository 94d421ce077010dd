package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/application"
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
	"github.com/Yat-Muk/pigment/internal/pkg/appctx"
	"github.com/Yat-Muk/pigment/internal/tui/handlers"
	"github.com/Yat-Muk/pigment/internal/tui/msg"
	"github.com/Yat-Muk/pigment/internal/tui/state"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

// Router 事件路由器
type Router struct {
	stateMgr   *state.Manager
	keyHandler *handlers.KeyHandler
	cmdBuilder *handlers.CommandBuilder
	pickerSvc  *application.PickerService
	log        *zap.Logger
	paths      *appctx.Paths
}

// NewRouter 創建路由器
func NewRouter(cfg *handlers.Config) *Router {
	cmdBuilder := handlers.NewCommandBuilder(
		cfg.Log,
		cfg.StateMgr,
		cfg.ConfigSvc,
		cfg.PickerSvc,
		cfg.ThemeRepo,
		cfg.Paths,
	)

	keyHandler := handlers.NewKeyHandler(cfg.StateMgr, cmdBuilder, cfg.PickerSvc)

	// 初始快照，保證首幀渲染有內容
	cfg.StateMgr.Picker().Sync(cfg.PickerSvc.State(), cfg.PickerSvc.Display())

	return &Router{
		stateMgr:   cfg.StateMgr,
		keyHandler: keyHandler,
		cmdBuilder: cmdBuilder,
		pickerSvc:  cfg.PickerSvc,
		log:        cfg.Log,
		paths:      cfg.Paths,
	}
}

// InitModel 用於 Model.Init 調用
func (r *Router) InitModel() tea.Cmd {
	return tea.Batch(
		r.stateMgr.UI().TextInput.Focus(),
		r.cmdBuilder.LoadConfigCmd(),
		r.cmdBuilder.WaitForPickerEventCmd(),
	)
}

// Update 適配 bubbletea 的 Update 簽名
func (r *Router) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := r.routeMessage(message); cmd != nil {
		return nil, cmd
	}
	return nil, nil
}

// View 適配 bubbletea 的 View 簽名
func (r *Router) View() string {
	return r.stateMgr.Render()
}

// routeMessage 內部路由邏輯
func (r *Router) routeMessage(message tea.Msg) tea.Cmd {
	m := r.stateMgr

	switch msgType := message.(type) {

	case tea.WindowSizeMsg:
		m.UI().UpdateSize(msgType.Width, msgType.Height)
		return nil

	case tea.KeyMsg:
		_, cmd := r.keyHandler.Handle(msgType, m)
		return cmd

	case msg.ConfigLoadedMsg:
		ui := m.UI()
		ui.ConfigLoadState = state.ConfigLoaded

		if msgType.Err != nil {
			ui.SetStatus(state.StatusFatal, fmt.Sprintf("配置加載失敗：%v", msgType.Err), "按 Ctrl+C 退出", true)
			m.Config().UpdateConfig(domainConfig.DefaultConfig())
			return nil
		}

		m.Config().UpdateConfig(msgType.Config)
		if !msgType.Silent {
			ui.SetStatus(state.StatusSuccess, "配置加載成功", "", false)
		}

		// 色板跟隨配置刷新
		return r.cmdBuilder.ResolveSwatchesCmd(msgType.Config.Picker.Swatches)

	case msg.ConfigSavedMsg:
		if msgType.Err != nil {
			m.UI().SetStatus(state.StatusError, fmt.Sprintf("保存失敗：%v", msgType.Err), "", false)
			return nil
		}
		if msgType.Message != "" {
			m.UI().SetStatus(state.StatusSuccess, msgType.Message, "", false)
		}

		// 配置已變，靜默重載（色板在重載完成後跟隨刷新）
		return r.cmdBuilder.LoadConfigSilentCmd()

	case msg.ThemeLoadedMsg:
		if msgType.Err != nil {
			m.UI().SetStatus(state.StatusError, fmt.Sprintf("加載主題變量失敗：%v", msgType.Err), "", false)
			m.Theme().SetRows(nil)
			return nil
		}
		m.Theme().SetRows(msgType.Rows)
		return nil

	case msg.SwatchesResolvedMsg:
		m.Swatch().SetEntries(msgType.Swatches)
		return nil

	case msg.PickerEventMsg:
		ev := msgType.Event
		m.Event().Add(types.EventRow{
			Type:  string(ev.Type),
			Value: ev.Value,
			Color: ev.Color,
			At:    ev.At,
		})
		m.Picker().Sync(r.pickerSvc.State(), r.pickerSvc.Display())

		// 繼續訂閱下一條事件
		return r.cmdBuilder.WaitForPickerEventCmd()

	case msg.ErrMsg:
		m.UI().SetStatus(state.StatusError, msgType.Err.Error(), "", false)
		return nil

	default:
		// 標準處理：同時更新 Spinner 和 TextInput
		var cmd tea.Cmd
		m.UI().Spinner, cmd = m.UI().Spinner.Update(message)

		inputCmd := m.UI().UpdateInput(message)
		return tea.Batch(cmd, inputCmd)
	}
}
