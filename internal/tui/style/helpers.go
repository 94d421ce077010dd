package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Yat-Muk/pigment/internal/domain/color"
)

// TextColor 返回一個使用指定前景色的 Render 函數。
// 這樣上層可以寫：style.TextColor(style.Info)("保存並應用")
func TextColor(c lipgloss.Color) func(string) string {
	s := lipgloss.NewStyle().Foreground(c)
	return func(str string) string {
		return s.Render(str)
	}
}

// 語義著色快捷函數 --------------------------------------------------

// InfoText 使用 Info 顏色（信息藍）顯示文字。
func InfoText(s string) string {
	return TextColor(Info)(s)
}

// SuccessText 使用 Success 顏色（成功綠）顯示文字。
func SuccessText(s string) string {
	return TextColor(Success)(s)
}

// WarningText 使用 Warning 顏色（警告黃）顯示文字。
func WarningText(s string) string {
	return TextColor(Warning)(s)
}

// ErrorText 使用 Error 顏色（錯誤紅）顯示文字。
func ErrorText(s string) string {
	return TextColor(Error)(s)
}

// MutedText 使用 Muted 顏色（弱化灰）顯示文字。
func MutedText(s string) string {
	return TextColor(Muted)(s)
}

// PrimaryText 使用 Primary 顏色（主題藍）顯示文字。
func PrimaryText(s string) string {
	return TextColor(Primary)(s)
}

// 終端顏色輔助 ------------------------------------------------------

// TermColor 把域內的 RGBA 轉成 lipgloss 可用的 hex 顏色。
// 終端不支持 Alpha，半透明顏色先與深色背景做一次合成。
func TermColor(c color.RGBA) lipgloss.Color {
	blended := BlendOverDark(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", blended.R, blended.G, blended.B))
}

// BlendOverDark 按 Alpha 把顏色疊在默認深色背景上。
func BlendOverDark(c color.RGBA) color.RGBA {
	if c.A >= 1 {
		return c
	}
	// 與 Polar1 (#1a1a1a) 合成
	const bg = 0x1a
	blend := func(ch int) int {
		return int(float64(ch)*c.A + bg*(1-c.A))
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 1}
}

// ContrastForeground 為色塊標籤挑選黑或白前景，保證可讀。
func ContrastForeground(c color.RGBA) lipgloss.Color {
	blended := BlendOverDark(c)
	cf := colorful.Color{
		R: float64(blended.R) / 255,
		G: float64(blended.G) / 255,
		B: float64(blended.B) / 255,
	}
	if _, _, l := cf.Hsl(); l > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
