package swatch

import (
	"github.com/Yat-Muk/pigment/internal/domain/color"
)

// Swatch 一個可點選的預設色塊
type Swatch struct {
	Raw     string     // 配置中的原始條目（可能是 var(--name) 引用）
	Label   string     // 顯示用標籤
	Value   color.RGBA // 解析後的顏色
	IsVar   bool
	VarName string
}

// Filter 過濾色板條目，只保留能解析為可識別顏色的項
// 引用了無法解析或非顏色變量的條目會被剔除（展示層過濾，核心轉換不受影響）
func Filter(entries []string, resolver color.VarResolver) []Swatch {
	out := make([]Swatch, 0, len(entries))

	for _, raw := range entries {
		name, isVar := color.CheckVar(raw)

		resolved, ok := color.ResolveString(raw, resolver)
		if !ok {
			continue
		}
		if !color.IsColor(resolved) {
			continue
		}

		value, _ := color.Parse(resolved)
		label := raw
		if isVar {
			label = name
		}

		out = append(out, Swatch{
			Raw:     raw,
			Label:   label,
			Value:   value,
			IsVar:   isVar,
			VarName: name,
		})
	}

	return out
}
