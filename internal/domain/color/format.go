package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Format 輸出格式選擇器
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatAuto  Format = "auto"  // 跟隨最近一次成功解析輸入的格式
	FormatMixed Format = "mixed" // 不透明時輸出 hex，否則輸出 rgba
)

// Valid 校驗格式選擇器取值
func (f Format) Valid() bool {
	switch f {
	case FormatHex, FormatRGB, FormatHSL, FormatAuto, FormatMixed:
		return true
	}
	return false
}

// DetectFormat 識別輸入字符串所屬的輸出格式（auto 模式的依據）
// 命名顏色與 hex 同歸於 hex；無法識別時默認 hex
func DetectFormat(input string) Format {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case strings.HasPrefix(s, "rgb"):
		return FormatRGB
	case strings.HasPrefix(s, "hsl"):
		return FormatHSL
	default:
		return FormatHex
	}
}

// Hex 序列化為小寫十六進制
// Alpha 字節僅在「啟用 Alpha 顯示 且（a<1 或強制 Alpha）」時追加
func (c RGBA) Hex(alphaEnabled, forceAlpha bool) string {
	if alphaEnabled && (c.A < 1 || forceAlpha) {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, int(c.A*255))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String 序列化為 rgb()/rgba() 形式
// Alpha 被抑制時（未啟用，或 a==1 且未強制）輸出三元組
func (c RGBA) String(alphaEnabled, forceAlpha bool) string {
	if alphaEnabled && (c.A < 1 || forceAlpha) {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String 序列化為 hsl()/hsla() 形式
func (c HSLA) String(alphaEnabled, forceAlpha bool) string {
	if alphaEnabled && (c.A < 1 || forceAlpha) {
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", c.H, c.S, c.L, formatAlpha(c.A))
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// FormatState 按選擇器把當前顏色格式化為規範顯示字符串
// lastInput 是 auto 模式的依據；mixed 在完全不透明時退回 hex
func FormatState(st *State, f Format, lastInput Format, alphaEnabled, forceAlpha bool) string {
	switch f {
	case FormatAuto:
		resolved := lastInput
		if resolved == "" || resolved == FormatAuto || resolved == FormatMixed {
			resolved = FormatHex
		}
		return FormatState(st, resolved, resolved, alphaEnabled, forceAlpha)
	case FormatMixed:
		if st.A == 1 && !forceAlpha {
			return st.RGBA().Hex(alphaEnabled, forceAlpha)
		}
		return st.RGBA().String(alphaEnabled, forceAlpha)
	case FormatRGB:
		return st.RGBA().String(alphaEnabled, forceAlpha)
	case FormatHSL:
		return st.HSLA().String(alphaEnabled, forceAlpha)
	default:
		return st.RGBA().Hex(alphaEnabled, forceAlpha)
	}
}

// formatAlpha Alpha 的最短十進制表示（0.5 而非 0.50）
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
