package state

import "github.com/Yat-Muk/pigment/internal/domain/color"

// 取色器交互的步進幅度
const (
	SaturationStep = 5  // 左右方向鍵
	ValueStep      = 5  // 上下方向鍵
	HueStep        = 15 // [ / ] 鍵
	AlphaStep      = 0.05
)

// PickerState 取色器視圖狀態
// 服務持有權威顏色，這裡只鏡像渲染所需的快照
type PickerState struct {
	Open    bool
	Current color.State
	Display string
}

// NewPickerState 創建取色器狀態
func NewPickerState() *PickerState {
	return &PickerState{
		Current: *color.NewState(),
	}
}

// Sync 同步服務端快照
func (p *PickerState) Sync(st color.State, display string) {
	p.Current = st
	p.Display = display
}

// MoveSaturation 左右移動飽和度光標，返回鉗制後的目標 HSVA
func (p *PickerState) MoveSaturation(delta int) color.HSVA {
	c := p.Current.HSVA()
	c.S = clampInt(c.S+delta, 0, 100)
	return c
}

// MoveValue 上下移動明度光標
func (p *PickerState) MoveValue(delta int) color.HSVA {
	c := p.Current.HSVA()
	c.V = clampInt(c.V+delta, 0, 100)
	return c
}

// MoveHue 沿色相條移動，越界環繞
func (p *PickerState) MoveHue(delta int) color.HSVA {
	c := p.Current.HSVA()
	h := (c.H + delta) % 360
	if h < 0 {
		h += 360
	}
	c.H = h
	return c
}

// MoveAlpha 沿 Alpha 條移動
func (p *PickerState) MoveAlpha(delta float64) color.HSVA {
	c := p.Current.HSVA()
	a := c.A + delta
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = a
	return c
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
