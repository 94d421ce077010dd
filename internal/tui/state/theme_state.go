package state

import "github.com/Yat-Muk/pigment/internal/tui/types"

// ThemeState 主題變量視圖狀態
type ThemeState struct {
	Rows   []types.ThemeVarRow
	Loaded bool
}

// NewThemeState 創建主題變量狀態
func NewThemeState() *ThemeState {
	return &ThemeState{}
}

// SetRows 更新變量列表
func (t *ThemeState) SetRows(rows []types.ThemeVarRow) {
	t.Rows = rows
	t.Loaded = true
}
