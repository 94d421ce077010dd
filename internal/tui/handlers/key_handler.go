package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Yat-Muk/pigment/internal/application"
	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/tui/constants"
	"github.com/Yat-Muk/pigment/internal/tui/state"
)

// KeyHandler 核心處理器：負責全局導航和請求分發
type KeyHandler struct {
	stateMgr   *state.Manager
	cmdBuilder *CommandBuilder
	pickerSvc  *application.PickerService
}

func NewKeyHandler(
	stateMgr *state.Manager,
	cmdBuilder *CommandBuilder,
	pickerSvc *application.PickerService,
) *KeyHandler {
	return &KeyHandler{
		stateMgr:   stateMgr,
		cmdBuilder: cmdBuilder,
		pickerSvc:  pickerSvc,
	}
}

// Handle 處理全局按鍵
func (h *KeyHandler) Handle(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// 取色器視圖全鍵盤交互，不走輸入框
	if m.UI().CurrentView == state.PickerView {
		return h.handlePickerKeys(msg, m)
	}

	switch msg.Type {
	case tea.KeyEnter:
		return h.handleInputSubmit(m, m.UI().CurrentView)

	case tea.KeyEsc:
		return h.handleInputEscape(m, m.UI().CurrentView)

	default:
		// 所有輸入交給組件，UpdateInput 會返回閃爍計時器的 Cmd
		return m, m.UI().UpdateInput(msg)
	}
}

// ========================================
// 取色器視圖交互
// ========================================

func (h *KeyHandler) handlePickerKeys(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	p := m.Picker()

	switch msg.String() {
	case "esc", "q":
		h.pickerSvc.Close()
		h.syncPicker(m)
		return m, m.UI().SwitchView(state.MainMenuView)

	case "enter":
		value := h.pickerSvc.Commit()
		h.syncPicker(m)
		m.UI().SetStatus(state.StatusSuccess, "已確認選擇", value, false)
		return m, nil

	case "left":
		h.pickerSvc.ApplyHSVA(p.MoveSaturation(-state.SaturationStep))
	case "right":
		h.pickerSvc.ApplyHSVA(p.MoveSaturation(state.SaturationStep))
	case "up":
		h.pickerSvc.ApplyHSVA(p.MoveValue(state.ValueStep))
	case "down":
		h.pickerSvc.ApplyHSVA(p.MoveValue(-state.ValueStep))
	case "[":
		h.pickerSvc.ApplyHSVA(p.MoveHue(-state.HueStep))
	case "]":
		h.pickerSvc.ApplyHSVA(p.MoveHue(state.HueStep))
	case "-":
		h.pickerSvc.ApplyHSVA(p.MoveAlpha(-state.AlphaStep))
	case "=", "+":
		h.pickerSvc.ApplyHSVA(p.MoveAlpha(state.AlphaStep))

	default:
		return m, nil
	}

	h.syncPicker(m)
	return m, nil
}

// syncPicker 把服務端快照鏡像到渲染狀態
func (h *KeyHandler) syncPicker(m *state.Manager) {
	m.Picker().Sync(h.pickerSvc.State(), h.pickerSvc.Display())
}

// ========================================
// 核心分發邏輯 (Enter 觸發)
// ========================================

func (h *KeyHandler) handleInputSubmit(m *state.Manager, view state.View) (*state.Manager, tea.Cmd) {
	input := strings.TrimSpace(m.UI().GetInputBuffer())
	m.UI().ClearInput()

	if input == "" {
		return m, nil
	}

	switch view {
	case state.MainMenuView:
		return h.submitMainMenu(m, input)
	case state.ColorInputView:
		return h.submitColorInput(m, input)
	case state.SwatchMenuView:
		return h.submitSwatchMenu(m, input)
	case state.FormatMenuView:
		return h.submitFormatMenu(m, input)
	case state.ThemeVarsView:
		return h.submitThemeVars(m, input)
	case state.EventLogView:
		return h.submitEventLog(m, input)
	}

	return m, nil
}

func (h *KeyHandler) handleInputEscape(m *state.Manager, view state.View) (*state.Manager, tea.Cmd) {
	switch view {
	case state.MainMenuView:
		return m, nil

	case state.SwatchMenuView:
		if m.Swatch().DeleteMode {
			m.Swatch().DeleteMode = false
			m.UI().SetStatus(state.StatusInfo, "已退出刪除模式", "", false)
			return m, nil
		}
	}

	return m, m.UI().SwitchView(state.MainMenuView)
}

// ========================================
// 具體業務邏輯 (Submits)
// ========================================

func (h *KeyHandler) submitMainMenu(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	switch strings.ToLower(input) {
	case constants.KeyMain_Picker:
		h.pickerSvc.Open()
		h.syncPicker(m)
		return m, m.UI().SwitchView(state.PickerView)

	case constants.KeyMain_Input:
		return m, m.UI().SwitchView(state.ColorInputView)

	case constants.KeyMain_Swatches:
		cmd1 := m.UI().SwitchView(state.SwatchMenuView)
		cmd2 := h.cmdBuilder.ResolveSwatchesCmd(m.Config().Config.Picker.Swatches)
		return m, tea.Batch(cmd1, cmd2)

	case constants.KeyMain_Format:
		return m, m.UI().SwitchView(state.FormatMenuView)

	case constants.KeyMain_Theme:
		cmd1 := m.UI().SwitchView(state.ThemeVarsView)
		cmd2 := h.cmdBuilder.LoadThemeVarsCmd()
		return m, tea.Batch(cmd1, cmd2)

	case constants.KeyMain_Events:
		return m, m.UI().SwitchView(state.EventLogView)

	case constants.KeyMain_Quit:
		return m, tea.Quit

	default:
		m.UI().SetStatus(state.StatusError, "無效選擇", "", false)
	}
	return m, nil
}

func (h *KeyHandler) submitColorInput(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	ok := h.pickerSvc.ApplyString(input)
	h.syncPicker(m)

	if ok {
		m.UI().SetStatus(state.StatusSuccess, "顏色已更新", h.pickerSvc.Display(), false)
	} else if _, isVar := color.CheckVar(input); isVar {
		m.UI().SetStatus(state.StatusError, "變量不可解析", "主題變量查詢不可用", false)
	} else {
		m.UI().SetStatus(state.StatusWarn, "輸入不可解析，已退化為黑色", "", false)
	}
	return m, nil
}

func (h *KeyHandler) submitSwatchMenu(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	sw := m.Swatch()

	// 刪除模式：下一次輸入視為序號
	if sw.DeleteMode {
		sw.DeleteMode = false
		num, err := strconv.Atoi(input)
		if err != nil {
			m.UI().SetStatus(state.StatusError, "無效序號", "", false)
			return m, nil
		}
		entry, ok := sw.At(num)
		if !ok {
			m.UI().SetStatus(state.StatusError, "序號超出範圍", "", false)
			return m, nil
		}

		// 配置按原始字符串存儲，刪除時回查原始下標
		for i, raw := range m.Config().Config.Picker.Swatches {
			if raw == entry.Raw {
				return m, h.cmdBuilder.RemoveSwatchCmd(i)
			}
		}
		m.UI().SetStatus(state.StatusError, "條目已不存在", "", false)
		return m, nil
	}

	switch strings.ToLower(input) {
	case constants.KeySwatch_Add:
		return m, h.cmdBuilder.AddSwatchCmd(h.pickerSvc.Display())

	case constants.KeySwatch_Delete:
		if len(sw.Entries) == 0 {
			m.UI().SetStatus(state.StatusWarn, "色板為空", "", false)
			return m, nil
		}
		sw.DeleteMode = true
		m.UI().SetStatus(state.StatusWarn, "刪除模式：輸入要刪除的序號", "", false)
		return m, nil
	}

	num, err := strconv.Atoi(input)
	if err != nil {
		m.UI().SetStatus(state.StatusError, "無效選擇", "", false)
		return m, nil
	}
	entry, ok := sw.At(num)
	if !ok {
		m.UI().SetStatus(state.StatusError, "序號超出範圍", "", false)
		return m, nil
	}

	h.pickerSvc.ApplyString(entry.Raw)
	h.syncPicker(m)
	m.UI().SetStatus(state.StatusSuccess, "已應用色板顏色", entry.Label, false)
	return m, nil
}

func (h *KeyHandler) submitFormatMenu(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	pickerCfg := &m.Config().Config.Picker

	setFormat := func(f color.Format) (*state.Manager, tea.Cmd) {
		h.pickerSvc.SetFormat(f)
		pickerCfg.Format = string(f)
		h.syncPicker(m)
		m.UI().SetStatus(state.StatusSuccess, fmt.Sprintf("輸出格式已切換為 %s", f), "", false)
		return m, h.cmdBuilder.PersistPickerOptionsCmd()
	}

	switch strings.ToLower(input) {
	case constants.KeyFormat_Hex:
		return setFormat(color.FormatHex)
	case constants.KeyFormat_RGB:
		return setFormat(color.FormatRGB)
	case constants.KeyFormat_HSL:
		return setFormat(color.FormatHSL)
	case constants.KeyFormat_Auto:
		return setFormat(color.FormatAuto)
	case constants.KeyFormat_Mixed:
		return setFormat(color.FormatMixed)

	case constants.KeyFormat_Alpha:
		h.pickerSvc.SetAlphaEnabled(!h.pickerSvc.AlphaEnabled())
		pickerCfg.AlphaEnabled = h.pickerSvc.AlphaEnabled()
		h.syncPicker(m)
		return m, h.cmdBuilder.PersistPickerOptionsCmd()

	case constants.KeyFormat_ForceAlpha:
		h.pickerSvc.SetForceAlpha(!h.pickerSvc.ForceAlpha())
		pickerCfg.ForceAlpha = h.pickerSvc.ForceAlpha()
		h.syncPicker(m)
		return m, h.cmdBuilder.PersistPickerOptionsCmd()

	default:
		m.UI().SetStatus(state.StatusError, "無效選項", "", false)
	}
	return m, nil
}

func (h *KeyHandler) submitThemeVars(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	num, err := strconv.Atoi(input)
	if err != nil || num < 1 || num > len(m.Theme().Rows) {
		m.UI().SetStatus(state.StatusError, "無效序號", "", false)
		return m, nil
	}

	row := m.Theme().Rows[num-1]
	if !row.IsColor {
		m.UI().SetStatus(state.StatusWarn, "該變量的值不是顏色", row.Value, false)
		return m, nil
	}

	// 走完整的 var() 解析鏈路，而不是直接用快照值
	h.pickerSvc.ApplyString(fmt.Sprintf("var(%s)", row.Name))
	h.syncPicker(m)
	m.UI().SetStatus(state.StatusSuccess, "已應用主題變量", row.Name, false)
	return m, nil
}

func (h *KeyHandler) submitEventLog(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	if strings.EqualFold(input, "c") {
		m.Event().Clear()
		m.UI().SetStatus(state.StatusInfo, "事件記錄已清空", "", false)
	}
	return m, nil
}
