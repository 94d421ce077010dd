package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/tui/constants"
	"github.com/Yat-Muk/pigment/internal/tui/style"
)

// RenderFormatMenu 輸出格式頁
func RenderFormatMenu(format string, alphaEnabled, forceAlpha bool, display string, ti textinput.Model, statusMsg string) string {
	header := renderSubpageHeader("輸出格式")

	mark := func(f string) lipgloss.Color {
		if f == format {
			return style.Aurora1
		}
		return style.Snow1
	}

	onOff := func(on bool) string {
		if on {
			return "[開]"
		}
		return "(關)"
	}

	items := []MenuItem{
		{constants.KeyFormat_Hex, "hex", "(#rrggbb / #rrggbbaa)", mark("hex")},
		{constants.KeyFormat_RGB, "rgb", "(rgb() / rgba())", mark("rgb")},
		{constants.KeyFormat_HSL, "hsl", "(hsl() / hsla())", mark("hsl")},
		{constants.KeyFormat_Auto, "auto", "(跟隨最近一次輸入)", mark("auto")},
		{constants.KeyFormat_Mixed, "mixed", "(不透明 hex，否則 rgba)", mark("mixed")},
		{"", "", "", lipgloss.Color("")},
		{constants.KeyFormat_Alpha, "Alpha 顯示 ", onOff(alphaEnabled), style.Snow1},
		{constants.KeyFormat_ForceAlpha, "強制 Alpha", onOff(forceAlpha), style.Snow1},
	}
	menu := renderMenu(items, false)

	previewSep := lipgloss.NewStyle().
		Foreground(style.Polar4).
		Render(strings.Repeat("─", 50))

	preview := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(fmt.Sprintf(" 當前輸出: %s",
			lipgloss.NewStyle().Foreground(style.Aurora4).Render(display)))

	statusBlock := RenderStatusMessage(statusMsg)
	footer := RenderInputFooter(ti)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		menu,
		previewSep,
		preview,
		statusBlock,
		footer,
	)
}
