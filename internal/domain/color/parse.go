package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// 支持的 CSS 顏色文法子集（詳見 DESIGN.md 的取捨說明）：
// 命名顏色、transparent、#rgb/#rgba/#rrggbb/#rrggbbaa、
// rgb()/rgba()（整數或百分比通道，逗號或空格分隔，斜線 Alpha）、
// hsl()/hsla()（度數色相 + 百分比），超出子集的輸入一律視為不可解析
var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([\d.]+%?)\s*[,\s]\s*([\d.]+%?)\s*[,\s]\s*([\d.]+%?)\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*([\d.]+)(?:deg)?\s*[,\s]\s*([\d.]+)%\s*[,\s]\s*([\d.]+)%\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
)

// Parse 解析 CSS 顏色字符串
// 第二個返回值表示輸入是否落在支持的文法子集內；解析永不返回錯誤
func Parse(input string) (RGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return RGBA{}, false
	}

	if c, ok := namedColors[s]; ok {
		return c, true
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return RGBA{
			R: parseChannel(m[1]),
			G: parseChannel(m[2]),
			B: parseChannel(m[3]),
			A: parseAlpha(m[4]),
		}, true
	}

	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return hslToRGBA(h, clamp01(sat/100), clamp01(l/100), parseAlpha(m[4])), true
	}

	return RGBA{}, false
}

// ParseOrBlack 解析失敗時靜默退化為不透明黑色（顯式的優雅降級策略）
func ParseOrBlack(input string) RGBA {
	c, ok := Parse(input)
	if !ok {
		return RGBA{A: 1}
	}
	return c
}

// IsColor 純謂詞：字符串是否為可識別的顏色
// 供色板過濾等展示層校驗使用
func IsColor(input string) bool {
	_, ok := Parse(input)
	return ok
}

// parseHex 解析 # 之後的十六進制部分，支持 3/4/6/8 位
func parseHex(s string) (RGBA, bool) {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return RGBA{}, false
		}
	}

	// 短格式逐位翻倍展開（f -> ff）
	switch len(s) {
	case 3, 4:
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	case 6, 8:
	default:
		return RGBA{}, false
	}

	r, _ := strconv.ParseUint(s[0:2], 16, 8)
	g, _ := strconv.ParseUint(s[2:4], 16, 8)
	b, _ := strconv.ParseUint(s[4:6], 16, 8)

	a := 1.0
	if len(s) == 8 {
		v, _ := strconv.ParseUint(s[6:8], 16, 8)
		a = roundAlpha(float64(v) / 255)
	}

	return RGBA{R: int(r), G: int(g), B: int(b), A: a}, true
}

// parseChannel 解析單個通道值（整數或百分比），截斷到 0-255
func parseChannel(tok string) int {
	if strings.HasSuffix(tok, "%") {
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		return int(math.Round(clamp01(f/100) * 255))
	}
	f, _ := strconv.ParseFloat(tok, 64)
	if f < 0 {
		f = 0
	}
	if f > 255 {
		f = 255
	}
	return int(math.Round(f))
}

// parseAlpha 解析 Alpha 值，缺省為 1
// 捨入到兩位小數，避免底層歸一化帶來的浮點漂移
func parseAlpha(tok string) float64 {
	if tok == "" {
		return 1
	}
	var f float64
	if strings.HasSuffix(tok, "%") {
		v, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		f = v / 100
	} else {
		f, _ = strconv.ParseFloat(tok, 64)
	}
	return roundAlpha(clamp01(f))
}

// hslToRGBA HSL 轉 RGBA（解析路徑專用，s/l 已歸一化到 [0,1]）
func hslToRGBA(h, s, l, a float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch int(math.Floor(h/60)) % 6 {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	case 5:
		r, g, b = chroma, 0, x
	}

	return RGBA{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
		A: a,
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func roundAlpha(a float64) float64 {
	return math.Round(a*100) / 100
}
