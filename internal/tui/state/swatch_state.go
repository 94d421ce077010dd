package state

import "github.com/Yat-Muk/pigment/internal/domain/swatch"

// SwatchState 色板視圖狀態
type SwatchState struct {
	Entries    []swatch.Swatch
	DeleteMode bool // 按 d 後進入，等待輸入序號
}

// NewSwatchState 創建色板狀態
func NewSwatchState() *SwatchState {
	return &SwatchState{}
}

// SetEntries 更新解析後的色板條目
func (s *SwatchState) SetEntries(entries []swatch.Swatch) {
	s.Entries = entries
}

// At 按 1 起始的顯示序號取條目
func (s *SwatchState) At(num int) (swatch.Swatch, bool) {
	if num < 1 || num > len(s.Entries) {
		return swatch.Swatch{}, false
	}
	return s.Entries[num-1], true
}
