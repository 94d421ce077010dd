package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/tui/style"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

// RenderThemeVars 主題變量頁：列出自定義屬性，輸入序號應用顏色值
func RenderThemeVars(rows []types.ThemeVarRow, loaded bool, ti textinput.Model, statusMsg string) string {
	header := renderSubpageHeader("主題變量")

	if !loaded {
		return lipgloss.JoinVertical(lipgloss.Left, header, "",
			lipgloss.NewStyle().Foreground(style.Aurora2).Render(" ⏳ 加載主題變量中..."))
	}

	var items []MenuItem
	for i, row := range rows {
		desc := row.Value
		if row.IsColor {
			desc = lipgloss.NewStyle().
				Background(style.TermColor(row.Color)).
				Foreground(style.ContrastForeground(row.Color)).
				Render(" " + row.Value + " ")
		}
		items = append(items, MenuItem{
			Num:       fmt.Sprintf("%d", i+1),
			Text:      row.Name,
			Desc:      desc,
			TextColor: style.Snow1,
		})
	}
	if len(items) == 0 {
		items = append(items, MenuItem{
			Num: "-", Text: "（主題文件缺失或沒有變量）", TextColor: style.Snow3,
		})
	}

	menu := renderMenu(items, true)

	hint := lipgloss.NewStyle().
		Foreground(style.Snow3).
		Render(" 輸入序號把變量的顏色值應用為當前顏色，非顏色值會被拒絕")

	statusBlock := RenderStatusMessage(statusMsg)
	footer := RenderInputFooter(ti)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		menu,
		hint,
		statusBlock,
		footer,
	)
}
