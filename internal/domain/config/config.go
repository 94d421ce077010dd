package config

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Yat-Muk/pigment/internal/domain/color"
)

// Repository 配置倉庫接口
type Repository interface {
	// Load 加載配置
	Load(ctx context.Context) (*Config, error)

	// Save 保存配置
	Save(ctx context.Context, cfg *Config) error
}

// Config 主配置結構
type Config struct {
	Version int          `yaml:"version"`
	Log     LogConfig    `yaml:"log"`
	Picker  PickerConfig `yaml:"picker"` // 取色器行為相關
	Theme   ThemeConfig  `yaml:"theme"`  // 主題變量來源
}

// LogConfig 日誌配置
type LogConfig struct {
	Level      string `yaml:"level"`
	OutputPath string `yaml:"output_path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// PickerConfig 取色器配置
type PickerConfig struct {
	// 輸出格式選擇器: hex | rgb | hsl | auto | mixed
	Format string `yaml:"format"`
	// 是否在輸出中顯示 Alpha 通道
	AlphaEnabled bool `yaml:"alpha_enabled"`
	// 即使完全不透明也強制輸出 Alpha
	ForceAlpha bool `yaml:"force_alpha"`
	// 啟動時的初始顏色（任何支持的顏色字符串或 var(--name) 引用）
	DefaultColor string `yaml:"default_color"`
	// 色板條目，允許混用字面量與變量引用
	Swatches []string `yaml:"swatches"`
}

// ThemeConfig 主題變量配置
type ThemeConfig struct {
	// 自定義屬性文件路徑，留空則使用 appctx 的默認位置
	File string `yaml:"file"`
}

// DefaultConfig 返回默認配置
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Log: LogConfig{
			Level:      "info",
			OutputPath: "/var/log/pigment/pigment.log",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
		Picker: PickerConfig{
			Format:       string(color.FormatHex),
			AlphaEnabled: true,
			ForceAlpha:   false,
			DefaultColor: "#000000",
			Swatches: []string{
				"#264653",
				"#2a9d8f",
				"#e9c46a",
				"#f4a261",
				"#e76f51",
				"rgba(0, 0, 0, 0.5)",
				"var(--brand)",
			},
		},
		Theme: ThemeConfig{},
	}
}

// Validate 校驗配置的合法性
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("無效的日誌級別: %q", c.Log.Level)
	}

	if !color.Format(c.Picker.Format).Valid() {
		return fmt.Errorf("無效的輸出格式: %q", c.Picker.Format)
	}

	// 默認顏色允許變量引用（啟動時解析），否則必須落在支持的文法子集內
	if _, isVar := color.CheckVar(c.Picker.DefaultColor); !isVar {
		if !color.IsColor(c.Picker.DefaultColor) {
			return fmt.Errorf("無效的默認顏色: %q", c.Picker.DefaultColor)
		}
	}

	return nil
}

// DeepCopy 通過 YAML 序列化往返生成深拷貝
func (c *Config) DeepCopy() *Config {
	if c == nil {
		return nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		// Config 只含可序列化字段，走到這裡屬於編程錯誤
		panic(fmt.Errorf("DeepCopy 序列化失敗: %w", err))
	}

	var newCfg Config
	if err := yaml.Unmarshal(data, &newCfg); err != nil {
		panic(fmt.Errorf("DeepCopy 反序列化失敗: %w", err))
	}

	return &newCfg
}
