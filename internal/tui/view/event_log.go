package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/tui/style"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

// RenderEventLog 事件記錄頁，最新在前
func RenderEventLog(rows []types.EventRow, ti textinput.Model, statusMsg string) string {
	header := renderSubpageHeader("事件記錄")

	typeColor := map[string]lipgloss.Color{
		"open":   style.Info,
		"close":  style.Muted,
		"input":  style.Secondary,
		"change": style.Success,
	}

	var lines []string
	for _, row := range rows {
		c, ok := typeColor[row.Type]
		if !ok {
			c = style.Snow2
		}
		tag := lipgloss.NewStyle().Foreground(c).Render(fmt.Sprintf("%-6s", row.Type))
		swatchBlock := lipgloss.NewStyle().
			Background(style.TermColor(row.Color)).
			Render("  ")

		lines = append(lines, fmt.Sprintf(" %s %s %s %s",
			style.MutedText(row.At.Format("15:04:05")),
			tag,
			swatchBlock,
			lipgloss.NewStyle().Foreground(style.Snow1).Render(row.Value),
		))
	}
	if len(lines) == 0 {
		lines = append(lines, style.MutedText(" （暫無事件）"))
	}

	separator := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(strings.Repeat("═", 50))

	statusBlock := RenderStatusMessage(statusMsg)
	footer := RenderInputFooter(ti)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(lines, "\n"),
		separator,
		statusBlock,
		footer,
	)
}
