package color

// RGBA 顏色的標準表示（序列化的無損來源）
// 通道範圍 0-255，Alpha 範圍 0-1
type RGBA struct {
	R int
	G int
	B int
	A float64
}

// HSVA 取色器內部使用的色相/飽和度/明度表示
// H 範圍 0-360（360 視同 0），S/V 範圍 0-100
type HSVA struct {
	H int
	S int
	V int
	A float64
}

// HSLA 僅供顯示輸出的表示，不作為存儲格式
type HSLA struct {
	H int
	S int
	L int
	A float64
}

// State 當前顏色記錄
// 同時持有 RGB 與 HSV 兩組字段，任何更新後兩者必須描述同一顏色（捨入容差內），Alpha 共享
type State struct {
	R int
	G int
	B int
	H int
	S int
	V int
	A float64
}

// NewState 創建默認狀態（不透明黑色）
func NewState() *State {
	return &State{A: 1}
}

// SetRGBA 以 RGBA 更新狀態，並同步推導 HSV 字段
func (s *State) SetRGBA(c RGBA) {
	hsva := RGBAtoHSVA(c)
	s.R, s.G, s.B = c.R, c.G, c.B
	s.H, s.S, s.V = hsva.H, hsva.S, hsva.V
	s.A = c.A
}

// SetHSVA 以 HSVA 更新狀態，並同步推導 RGB 字段
func (s *State) SetHSVA(c HSVA) {
	rgba := HSVAtoRGBA(c)
	s.H, s.S, s.V = c.H, c.S, c.V
	s.R, s.G, s.B = rgba.R, rgba.G, rgba.B
	s.A = c.A
}

// RGBA 返回當前的 RGBA 視圖
// 讀取視圖採用值接收者，快照（非可尋址值）也能直接調用
func (s State) RGBA() RGBA {
	return RGBA{R: s.R, G: s.G, B: s.B, A: s.A}
}

// HSVA 返回當前的 HSVA 視圖
func (s State) HSVA() HSVA {
	return HSVA{H: s.H, S: s.S, V: s.V, A: s.A}
}

// HSLA 從 HSV 字段推導顯示用的 HSLA 視圖
func (s State) HSLA() HSLA {
	return HSVAtoHSLA(s.HSVA())
}
