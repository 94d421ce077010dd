package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/domain/swatch"
	"github.com/Yat-Muk/pigment/internal/tui/constants"
	"github.com/Yat-Muk/pigment/internal/tui/style"
)

// RenderSwatchMenu 色板頁：輸入序號應用，a 添加當前顏色，d 進入刪除模式
func RenderSwatchMenu(entries []swatch.Swatch, deleteMode bool, ti textinput.Model, statusMsg string) string {
	header := renderSubpageHeader("色板")

	var items []MenuItem
	for i, entry := range entries {
		block := lipgloss.NewStyle().
			Background(style.TermColor(entry.Value)).
			Render("      ")
		items = append(items, MenuItem{
			Num:       fmt.Sprintf("%d", i+1),
			Text:      entry.Label,
			Desc:      block,
			TextColor: style.Snow1,
		})
	}
	if len(items) == 0 {
		items = append(items, MenuItem{
			Num: "-", Text: "（色板為空）", TextColor: style.Snow3,
		})
	}

	items = append(items,
		MenuItem{"", "", "", lipgloss.Color("")},
		MenuItem{constants.KeySwatch_Add, "添加當前顏色", "", style.Snow2},
		MenuItem{constants.KeySwatch_Delete, "刪除條目", "", style.Snow2},
	)

	menu := renderMenu(items, true)

	if deleteMode && statusMsg == "" {
		statusMsg = "刪除模式：輸入要刪除的序號"
	}

	statusBlock := RenderStatusMessage(statusMsg)
	footer := RenderInputFooter(ti)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		menu,
		statusBlock,
		footer,
	)
}
