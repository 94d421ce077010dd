package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/tui/style"
)

// RenderColorInput 顏色字符串輸入頁
// 輸入框內容實時校驗，綠色表示可解析
func RenderColorInput(display string, current color.RGBA, ti textinput.Model, statusMsg string) string {
	header := renderSubpageHeader("輸入顏色")

	desc := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(" 支持 #rgb/#rrggbb(aa)、rgb()/rgba()、hsl()/hsla()、命名色與 var(--name)")

	block := lipgloss.NewStyle().
		Background(style.TermColor(current)).
		Foreground(style.ContrastForeground(current)).
		Padding(0, 2).
		Render(display)

	currentLine := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Foreground(style.Snow2).Render(" 當前顏色: "),
		block,
	)

	// 實時解析提示
	buffer := strings.TrimSpace(ti.Value())
	validity := ""
	if buffer != "" {
		if _, isVar := color.CheckVar(buffer); isVar {
			validity = style.InfoText(" ◆ 變量引用，提交時解析")
		} else if color.IsColor(buffer) {
			validity = style.SuccessText(" ✓ 可解析")
		} else {
			validity = style.ErrorText(" ✗ 不可解析，提交將退化為黑色")
		}
	}

	infoSep := lipgloss.NewStyle().
		Foreground(style.Polar4).
		Render(strings.Repeat("─", 50))

	statusBlock := RenderStatusMessage(statusMsg)
	footer := RenderInputFooter(ti)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		desc,
		infoSep,
		currentLine,
		validity,
		statusBlock,
		footer,
	)
}
