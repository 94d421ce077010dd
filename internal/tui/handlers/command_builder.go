package handlers

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/application"
	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/domain/swatch"
	"github.com/Yat-Muk/pigment/internal/infra/theme"
	"github.com/Yat-Muk/pigment/internal/pkg/appctx"
	"github.com/Yat-Muk/pigment/internal/tui/msg"
	"github.com/Yat-Muk/pigment/internal/tui/state"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

// CommandBuilder 把應用服務調用包裝為 bubbletea 命令
type CommandBuilder struct {
	log       *zap.Logger
	stateMgr  *state.Manager
	configSvc *application.ConfigService
	pickerSvc *application.PickerService
	themeRepo *theme.Repository
	paths     *appctx.Paths

	// 取色器事件經監聽器進入通道，由訂閱命令送回更新循環
	events chan application.Event
}

// NewCommandBuilder 構造函數
func NewCommandBuilder(
	log *zap.Logger,
	stateMgr *state.Manager,
	configSvc *application.ConfigService,
	pickerSvc *application.PickerService,
	themeRepo *theme.Repository,
	paths *appctx.Paths,
) *CommandBuilder {
	b := &CommandBuilder{
		log:       log,
		stateMgr:  stateMgr,
		configSvc: configSvc,
		pickerSvc: pickerSvc,
		themeRepo: themeRepo,
		paths:     paths,
		events:    make(chan application.Event, 64),
	}

	push := func(ev application.Event) {
		select {
		case b.events <- ev:
		default:
			// 隊列滿時丟棄，事件記錄只用於展示
		}
	}
	for _, t := range []application.EventType{
		application.EventOpen,
		application.EventClose,
		application.EventInput,
		application.EventChange,
	} {
		pickerSvc.On(t, push)
	}

	return b
}

// WaitForPickerEventCmd 訂閱下一條取色器事件
func (b *CommandBuilder) WaitForPickerEventCmd() tea.Cmd {
	return func() tea.Msg {
		return msg.PickerEventMsg{Event: <-b.events}
	}
}

// LoadConfigCmd 加載配置
func (b *CommandBuilder) LoadConfigCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if b.configSvc == nil {
			return msg.ConfigLoadedMsg{Err: fmt.Errorf("ConfigService 未初始化")}
		}

		cfg, err := b.configSvc.GetConfig(ctx)
		return msg.ConfigLoadedMsg{Config: cfg, Err: err}
	}
}

// LoadConfigSilentCmd 靜默加載配置
func (b *CommandBuilder) LoadConfigSilentCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		cfg, err := b.configSvc.GetConfig(ctx)
		return msg.ConfigLoadedMsg{Config: cfg, Err: err, Silent: true}
	}
}

// ResolveSwatchesCmd 解析色板條目（變量引用經主題倉庫求值）
func (b *CommandBuilder) ResolveSwatchesCmd(entries []string) tea.Cmd {
	return func() tea.Msg {
		return msg.SwatchesResolvedMsg{
			Swatches: swatch.Filter(entries, b.themeRepo),
		}
	}
}

// LoadThemeVarsCmd 加載主題變量列表
func (b *CommandBuilder) LoadThemeVarsCmd() tea.Cmd {
	return func() tea.Msg {
		vars, err := b.themeRepo.All()
		if err != nil {
			return msg.ThemeLoadedMsg{Err: err}
		}

		rows := make([]types.ThemeVarRow, 0, len(vars))
		for _, name := range theme.SortedNames(vars) {
			value := vars[name]
			row := types.ThemeVarRow{Name: name, Value: value}
			if c, ok := color.Parse(value); ok {
				row.Color = c
				row.IsColor = true
			}
			rows = append(rows, row)
		}
		return msg.ThemeLoadedMsg{Rows: rows}
	}
}

// PersistPickerOptionsCmd 把當前取色器選項寫回配置文件
func (b *CommandBuilder) PersistPickerOptionsCmd() tea.Cmd {
	format := b.pickerSvc.Format()
	alphaEnabled := b.pickerSvc.AlphaEnabled()
	forceAlpha := b.pickerSvc.ForceAlpha()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := b.configSvc.SetPickerOptions(ctx, format, alphaEnabled, forceAlpha); err != nil {
			return msg.ConfigSavedMsg{Err: err}
		}
		return msg.ConfigSavedMsg{Message: "輸出選項已保存"}
	}
}

// AddSwatchCmd 把條目寫入配置的色板
func (b *CommandBuilder) AddSwatchCmd(entry string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := b.configSvc.AddSwatch(ctx, entry); err != nil {
			return msg.ConfigSavedMsg{Err: err}
		}
		return msg.ConfigSavedMsg{Message: "已添加到色板"}
	}
}

// RemoveSwatchCmd 按下標刪除色板條目
func (b *CommandBuilder) RemoveSwatchCmd(index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := b.configSvc.RemoveSwatch(ctx, index); err != nil {
			return msg.ConfigSavedMsg{Err: err}
		}
		return msg.ConfigSavedMsg{Message: "已刪除色板條目"}
	}
}
