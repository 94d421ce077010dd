package state

import (
	"fmt"

	"github.com/Yat-Muk/pigment/internal/tui/view"
)

// Render - 安全渲染視圖
func (m *Manager) Render() string {
	if m.ui.ConfigLoadState == ConfigNotLoaded {
		return view.RenderLoading("初始化配置中...")
	}

	// 獲取全局狀態消息
	statusMsg := m.ui.Status.Message
	if m.ui.Status.Detail != "" {
		statusMsg = fmt.Sprintf("%s\n%s", statusMsg, m.ui.Status.Detail)
	}

	ti := m.ui.TextInput
	picker := m.picker
	pickerCfg := m.config.Config.Picker

	switch m.ui.CurrentView {
	case MainMenuView:
		return view.RenderMainMenu(
			picker.Current,
			picker.Display,
			pickerCfg.Format,
			m.version,
			ti,
			statusMsg,
		)

	case PickerView:
		return view.RenderPicker(
			picker.Current,
			picker.Display,
			pickerCfg.AlphaEnabled,
			statusMsg,
		)

	case ColorInputView:
		return view.RenderColorInput(picker.Display, picker.Current.RGBA(), ti, statusMsg)

	case SwatchMenuView:
		return view.RenderSwatchMenu(m.swatch.Entries, m.swatch.DeleteMode, ti, statusMsg)

	case FormatMenuView:
		return view.RenderFormatMenu(
			pickerCfg.Format,
			pickerCfg.AlphaEnabled,
			pickerCfg.ForceAlpha,
			picker.Display,
			ti,
			statusMsg,
		)

	case ThemeVarsView:
		return view.RenderThemeVars(m.theme.Rows, m.theme.Loaded, ti, statusMsg)

	case EventLogView:
		return view.RenderEventLog(m.event.Rows(), ti, statusMsg)
	}

	return view.RenderError("未知視圖", ti)
}
