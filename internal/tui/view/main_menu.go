package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/tui/constants"
	"github.com/Yat-Muk/pigment/internal/tui/style"
)

// RenderMainMenu 渲染主菜單：Logo + 當前顏色預覽 + 功能入口
func RenderMainMenu(
	current color.State,
	display string,
	format string,
	version string,
	ti textinput.Model,
	statusMsg string,
) string {
	logo := RenderLogo()

	subtitle := lipgloss.NewStyle().
		Foreground(style.Aurora3).
		Render(fmt.Sprintf(" :: 終端取色器 :: %s", style.MutedText("v"+version)))

	separator := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(strings.Repeat("═", 50))

	preview := renderColorPreview(current.RGBA(), display, format)

	items := []MenuItem{
		{constants.KeyMain_Picker, "打開取色器", "(方向鍵調整，Enter 確認)", style.Snow1},
		{constants.KeyMain_Input, "輸入顏色字符串", "(hex / rgb / hsl / 命名色 / var)", style.Snow1},
		{constants.KeyMain_Swatches, "色板", "", style.Snow1},
		{constants.KeyMain_Format, "輸出格式", "", style.Snow1},
		{constants.KeyMain_Theme, "主題變量", "", style.Snow1},
		{constants.KeyMain_Events, "事件記錄", "", style.Snow1},
		{"", "", "", lipgloss.Color("")},
		{constants.KeyMain_Quit, "退出", "", style.Snow2},
	}
	menu := renderMenu(items, false)

	statusBlock := RenderStatusMessage(statusMsg)
	input := RenderTextInput(ti)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		logo,
		subtitle,
		separator,
		preview,
		menu,
		statusBlock,
		input,
	)
}

// renderColorPreview 當前顏色的色塊與顯示字符串
func renderColorPreview(c color.RGBA, display, format string) string {
	block := lipgloss.NewStyle().
		Background(style.TermColor(c)).
		Foreground(style.ContrastForeground(c)).
		Padding(0, 2).
		Render(display)

	label := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(" 當前顏色 ")

	formatTag := lipgloss.NewStyle().
		Foreground(style.Snow3).
		Render(fmt.Sprintf(" (%s)", format))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		lipgloss.JoinHorizontal(lipgloss.Left, label, block, formatTag),
		"",
	)
}
