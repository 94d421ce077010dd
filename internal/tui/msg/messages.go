package msg

import (
	"github.com/Yat-Muk/pigment/internal/application"
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
	"github.com/Yat-Muk/pigment/internal/domain/swatch"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

// ConfigLoadedMsg 配置加載消息
type ConfigLoadedMsg struct {
	Config *domainConfig.Config
	Err    error
	Silent bool
}

// ConfigSavedMsg 配置保存結果消息
type ConfigSavedMsg struct {
	Message string
	Err     error
}

// ThemeLoadedMsg 主題變量加載消息
type ThemeLoadedMsg struct {
	Rows []types.ThemeVarRow
	Err  error
}

// SwatchesResolvedMsg 色板條目解析完成消息
type SwatchesResolvedMsg struct {
	Swatches []swatch.Swatch
}

// PickerEventMsg 取色器生命週期事件消息
type PickerEventMsg struct {
	Event application.Event
}

// ErrMsg 通用錯誤消息
type ErrMsg struct {
	Err error
}
