package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/pigment/internal/tui/style"
)

// MenuItem 菜單項結構
type MenuItem struct {
	Num       string         // 序號 (如 "1", "a")
	Text      string         // 選項名稱
	Desc      string         // 描述/提示 -> 自動渲染為灰色
	TextColor lipgloss.Color // Text 的顏色
}

// renderMenu 渲染自動對齊的菜單列表
// tableMode 下所有行參與對齊（色板/變量表格），否則只對齊帶括號描述的行
func renderMenu(items []MenuItem, tableMode bool) string {
	maxNumWidth := 0
	maxTextWidth := 0

	for _, item := range items {
		// 跳過分隔線
		if item.Num == "" && item.Text == "" {
			continue
		}

		if len(item.Num) > maxNumWidth {
			maxNumWidth = len(item.Num)
		}

		w := runewidth.StringWidth(item.Text)
		if (tableMode || strings.Contains(item.Desc, "(")) && w > maxTextWidth {
			maxTextWidth = w
		}
	}

	targetWidth := 0
	if maxTextWidth > 0 {
		targetWidth = maxTextWidth + 2
	}

	var rows []string
	for _, item := range items {
		if item.Num == "" && item.Text == "" {
			separator := lipgloss.NewStyle().
				Foreground(style.Snow2).
				Render(" " + strings.Repeat("┄", 48))
			rows = append(rows, separator)
			continue
		}

		numStyle := lipgloss.NewStyle().Foreground(style.Aurora3)
		textStyle := lipgloss.NewStyle().Foreground(item.TextColor)
		dotStyle := lipgloss.NewStyle().Foreground(style.Snow3)

		numStr := fmt.Sprintf("%*s", maxNumWidth, item.Num)

		padding := " "
		if (tableMode || strings.Contains(item.Desc, "(")) && targetWidth > 0 {
			gap := targetWidth - runewidth.StringWidth(item.Text)
			if gap < 1 {
				gap = 1
			}
			padding = strings.Repeat(" ", gap)
		}

		// 帶轉義序列的描述已自行著色
		var descDisplay string
		if strings.Contains(item.Desc, "\x1b") {
			descDisplay = item.Desc
		} else {
			descDisplay = colorizeDescription(item.Desc)
		}

		row := fmt.Sprintf(" %s%s %s%s%s",
			numStyle.Render(numStr),
			dotStyle.Render("."),
			textStyle.Render(item.Text),
			padding,
			descDisplay,
		)
		rows = append(rows, row)
	}

	bottomSeparator := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(strings.Repeat("═", 50))
	rows = append(rows, bottomSeparator)

	return strings.Join(rows, "\n")
}

// colorizeDescription 默認著色邏輯：括號變灰，中括號變黃
func colorizeDescription(desc string) string {
	if desc == "" {
		return ""
	}

	yellowStyle := lipgloss.NewStyle().Foreground(style.StatusYellow)
	greyStyle := lipgloss.NewStyle().Foreground(style.Snow3)

	var result strings.Builder
	runes := []rune(desc)
	n := len(runes)

	for i := 0; i < n; i++ {
		char := runes[i]
		if char == '[' {
			start := i
			for i < n && runes[i] != ']' {
				i++
			}
			if i < n {
				result.WriteString(yellowStyle.Render(string(runes[start : i+1])))
			} else {
				result.WriteString(greyStyle.Render(string(runes[start:])))
			}
		} else {
			start := i
			for i < n && runes[i] != '[' {
				i++
			}
			result.WriteString(greyStyle.Render(string(runes[start:i])))
			i--
		}
	}
	return result.String()
}

// RenderLogo 渲染 PIGMENT ASCII Logo
func RenderLogo() string {
	logoLines := []string{
		"██████╗ ██╗ ██████╗ ███╗   ███╗███████╗███╗   ██╗████████╗",
		"██╔══██╗██║██╔════╝ ████╗ ████║██╔════╝████╗  ██║╚══██╔══╝",
		"██████╔╝██║██║  ███╗██╔████╔██║█████╗  ██╔██╗ ██║   ██║   ",
		"██╔═══╝ ██║██║   ██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║   ██║   ",
		"██║     ██║╚██████╔╝██║ ╚═╝ ██║███████╗██║ ╚████║   ██║   ",
		"╚═╝     ╚═╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ",
	}

	gradientColors := []lipgloss.Color{
		lipgloss.Color("#FF007F"),
		lipgloss.Color("#FC7B00"),
		lipgloss.Color("#FFDC65"),
		lipgloss.Color("#B2FF00"),
		lipgloss.Color("#1AAEFC"),
		lipgloss.Color("#DDAAFF"),
	}

	var coloredLines []string
	for i, line := range logoLines {
		coloredLine := lipgloss.NewStyle().
			Foreground(gradientColors[i]).
			Render(line)
		coloredLines = append(coloredLines, coloredLine)
	}

	return lipgloss.JoinVertical(lipgloss.Left, coloredLines...)
}

// renderSubpageHeader 渲染子頁面頭部
func renderSubpageHeader(subTitle string) string {
	title := lipgloss.NewStyle().
		Foreground(style.Aurora2).
		Bold(true).
		Render(" PIGMENT")

	subTitleLine := lipgloss.NewStyle().
		Foreground(style.Aurora3).
		Render(fmt.Sprintf(" »»» %s «««", subTitle))

	separator := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(strings.Repeat("═", 50))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subTitleLine,
		separator,
	)
}

// RenderStatusMessage 渲染底部狀態欄
// 根據關鍵字（警告、失敗、成功）決定顏色
func RenderStatusMessage(msg string) string {
	if msg == "" {
		return ""
	}

	baseColor := style.Aurora3
	if strings.Contains(msg, "⚠️") ||
		strings.Contains(msg, "警告") {
		baseColor = style.StatusYellow
	} else if strings.Contains(msg, "失敗") ||
		strings.Contains(msg, "錯誤") ||
		strings.Contains(msg, "無效") ||
		strings.Contains(msg, "✗") {
		baseColor = style.StatusRed
	} else if strings.Contains(msg, "成功") ||
		strings.Contains(msg, "完成") ||
		strings.Contains(msg, "✓") {
		baseColor = style.StatusGreen
	}

	baseStyle := lipgloss.NewStyle().Foreground(baseColor)

	rawLines := strings.Split(msg, "\n")
	var renderedLines []string
	for _, line := range rawLines {
		renderedLines = append(renderedLines, baseStyle.Render(line))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, renderedLines...)

	return lipgloss.NewStyle().
		Padding(1, 1).
		Width(52).
		Align(lipgloss.Left).
		Render(content)
}

// RenderTextInput 只渲染輸入行，不帶底部按鍵提示（主菜單使用）
func RenderTextInput(ti textinput.Model) string {
	prompt := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(" ❯ 請輸入: ")

	return lipgloss.JoinHorizontal(lipgloss.Left, prompt, ti.View())
}

// RenderInputFooter 渲染輸入提示（子菜單使用）
func RenderInputFooter(ti textinput.Model) string {
	inputLine := RenderTextInput(ti)

	snow3 := lipgloss.NewStyle().Foreground(style.Snow3)
	polar4 := lipgloss.NewStyle().Foreground(style.Polar4)

	hints := lipgloss.JoinHorizontal(lipgloss.Left,
		snow3.Render("Esc "), polar4.Render("返回"),
		polar4.Render(" • "),
		snow3.Render("Enter "), polar4.Render("確認"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputLine,
		"\n",
		lipgloss.NewStyle().PaddingLeft(1).Render(hints),
	)
}

// RenderError 渲染錯誤頁面
func RenderError(errMsg string, ti textinput.Model) string {
	header := renderSubpageHeader("錯誤")
	errorStyle := lipgloss.NewStyle().Foreground(style.StatusRed).Bold(true)
	errorText := errorStyle.Render(fmt.Sprintf("✗ %s", errMsg))

	footer := RenderInputFooter(ti)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", errorText, "", footer)
}

// RenderLoading 渲染加載頁面
func RenderLoading(message string) string {
	header := renderSubpageHeader("加載中")
	loadingStyle := lipgloss.NewStyle().Foreground(style.Aurora2)
	loadingText := loadingStyle.Render(fmt.Sprintf("⏳ %s...", message))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", loadingText)
}
