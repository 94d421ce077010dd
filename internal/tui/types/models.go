package types

import (
	"time"

	"github.com/Yat-Muk/pigment/internal/domain/color"
)

// EventRow 事件記錄頁的單行數據
type EventRow struct {
	Type  string
	Value string
	Color color.RGBA
	At    time.Time
}

// ThemeVarRow 主題變量頁的單行數據
type ThemeVarRow struct {
	Name    string
	Value   string
	Color   color.RGBA
	IsColor bool
}
