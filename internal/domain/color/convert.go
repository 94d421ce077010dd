package color

import "math"

// RGBAtoHSVA RGBA 轉 HSVA
// 色相按最大通道分段計算，負值加 360 回繞；無彩色（chroma 為 0）時色相定義為 0
func RGBAtoHSVA(c RGBA) HSVA {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	chroma := max - min

	var h float64
	switch {
	case chroma == 0:
		h = 0
	case max == r:
		h = 60 * ((g - b) / chroma)
	case max == g:
		h = 60 * (2 + (b-r)/chroma)
	default:
		h = 60 * (4 + (r-g)/chroma)
	}
	if h < 0 {
		h += 360
	}

	// 最大通道為 0（純黑）時飽和度定義為 0，避免除零
	var s float64
	if max > 0 {
		s = chroma / max
	}

	return HSVA{
		H: int(math.Floor(h)),
		S: int(math.Round(s * 100)),
		V: int(math.Round(max * 100)),
		A: c.A,
	}
}

// HSVAtoRGBA HSVA 轉 RGBA
// 標準六扇區算法；h=360 經 mod 6 歸約後與 h=0 行為一致
func HSVAtoRGBA(c HSVA) RGBA {
	h := math.Mod(float64(c.H), 360)
	if h < 0 {
		h += 360
	}
	s := float64(c.S) / 100
	v := float64(c.V) / 100

	sector := h / 60
	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := v - chroma

	// 顯式枚舉六個扇區，每個分支返回排列後的通道三元組
	var r, g, b float64
	switch int(math.Floor(sector)) % 6 {
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
		A: c.A,
	}
}

// HSVAtoHSLA HSVA 轉 HSLA（單向，僅供顯示輸出）
// 亮度處於 0 或 1 邊界時飽和度定義為 0，顯式繞開除零
func HSVAtoHSLA(c HSVA) HSLA {
	s := float64(c.S) / 100
	v := float64(c.V) / 100

	l := v * (1 - s/2)

	var sl float64
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}

	return HSLA{
		H: c.H,
		S: int(math.Round(sl * 100)),
		L: int(math.Round(l * 100)),
		A: c.A,
	}
}
