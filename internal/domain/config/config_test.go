package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig 默認配置必須通過自身校驗
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "hex", cfg.Picker.Format)
	assert.True(t, cfg.Picker.AlphaEnabled)
	assert.Equal(t, "#000000", cfg.Picker.DefaultColor)
	assert.NotEmpty(t, cfg.Picker.Swatches)
}

// TestValidate 非法取值逐項拒絕
func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Picker.Format = "cmyk"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Picker.DefaultColor = "notacolor"
	assert.Error(t, cfg.Validate())

	// 變量引用作為默認顏色是合法的（啟動時才解析）
	cfg = DefaultConfig()
	cfg.Picker.DefaultColor = "var(--brand)"
	assert.NoError(t, cfg.Validate())
}

// TestDeepCopy 拷貝必須與源對象完全隔離
func TestDeepCopy(t *testing.T) {
	original := DefaultConfig()
	copied := original.DeepCopy()

	require.Equal(t, original, copied)

	copied.Picker.Format = "rgb"
	copied.Picker.Swatches[0] = "#ffffff"

	assert.Equal(t, "hex", original.Picker.Format, "修改拷貝不應影響源對象")
	assert.Equal(t, "#264653", original.Picker.Swatches[0])
}

// TestDeepCopy_Nil nil 接收者返回 nil
func TestDeepCopy_Nil(t *testing.T) {
	var cfg *Config
	assert.Nil(t, cfg.DeepCopy())
}
