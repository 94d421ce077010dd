package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/tui/style"
)

// 網格採樣步長：飽和度橫向 0-100，明度縱向 100-0
const (
	gridSatStep   = 5
	gridValStep   = 10
	hueBarStep    = 10
	alphaBarCells = 21
)

// RenderPicker 渲染交互式取色器
// 飽和度/明度網格 + 色相條 + 可選的 Alpha 條
func RenderPicker(current color.State, display string, alphaEnabled bool, statusMsg string) string {
	header := renderSubpageHeader("取色器")

	hsva := current.HSVA()
	grid := renderSVGrid(hsva)
	hueBar := renderHueBar(hsva.H)

	sections := []string{header, "", grid, "", hueBar}

	if alphaEnabled {
		sections = append(sections, renderAlphaBar(current.RGBA()))
	}

	valueLine := lipgloss.NewStyle().
		Foreground(style.Snow1).
		Render(fmt.Sprintf(" %s  %s", display,
			style.MutedText(fmt.Sprintf("H:%d S:%d V:%d A:%.2f", hsva.H, hsva.S, hsva.V, hsva.A))))

	snow3 := lipgloss.NewStyle().Foreground(style.Snow3)
	polar4 := lipgloss.NewStyle().Foreground(style.Polar4)
	hints := lipgloss.JoinHorizontal(lipgloss.Left,
		snow3.Render(" ↑↓←→ "), polar4.Render("飽和度/明度"),
		polar4.Render(" • "),
		snow3.Render("[ ] "), polar4.Render("色相"),
		polar4.Render(" • "),
		snow3.Render("- = "), polar4.Render("透明度"),
		polar4.Render(" • "),
		snow3.Render("Enter "), polar4.Render("確認"),
		polar4.Render(" • "),
		snow3.Render("Esc "), polar4.Render("關閉"),
	)

	sections = append(sections, "", valueLine, RenderStatusMessage(statusMsg), hints)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSVGrid 以背景色塊鋪出當前色相下的飽和度/明度平面
func renderSVGrid(hsva color.HSVA) string {
	var rows []string
	for v := 100; v >= 0; v -= gridValStep {
		var sb strings.Builder
		sb.WriteString(" ")
		for s := 0; s <= 100; s += gridSatStep {
			cell := color.HSVAtoRGBA(color.HSVA{H: hsva.H, S: s, V: v, A: 1})
			cellStyle := lipgloss.NewStyle().Background(style.TermColor(cell))

			// 光標落在最近的採樣格上
			if nearest(hsva.S, gridSatStep) == s && nearest(hsva.V, gridValStep) == v {
				sb.WriteString(cellStyle.
					Foreground(style.ContrastForeground(cell)).
					Render("✛"))
			} else {
				sb.WriteString(cellStyle.Render(" "))
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderHueBar 色相條，0-360 均勻採樣
func renderHueBar(h int) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for deg := 0; deg < 360; deg += hueBarStep {
		cell := color.HSVAtoRGBA(color.HSVA{H: deg, S: 100, V: 100, A: 1})
		cellStyle := lipgloss.NewStyle().Background(style.TermColor(cell))

		if nearest(h%360, hueBarStep)%360 == deg {
			sb.WriteString(cellStyle.
				Foreground(style.ContrastForeground(cell)).
				Render("│"))
		} else {
			sb.WriteString(cellStyle.Render(" "))
		}
	}
	return sb.String()
}

// renderAlphaBar 透明度條，當前顏色從全透明漸變到不透明
func renderAlphaBar(c color.RGBA) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for i := 0; i < alphaBarCells; i++ {
		a := float64(i) / float64(alphaBarCells-1)
		cell := color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
		cellStyle := lipgloss.NewStyle().Background(style.TermColor(cell))

		if int(c.A*float64(alphaBarCells-1)+0.5) == i {
			sb.WriteString(cellStyle.
				Foreground(style.ContrastForeground(cell)).
				Render("│"))
		} else {
			sb.WriteString(cellStyle.Render(" "))
		}
	}
	return sb.String()
}

// nearest 取最接近 n 的步長倍數
func nearest(n, step int) int {
	return ((n + step/2) / step) * step
}
