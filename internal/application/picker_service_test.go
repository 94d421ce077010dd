package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
)

type mapResolver map[string]string

func (m mapResolver) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func newTestPicker(t *testing.T, cfg domainConfig.PickerConfig, resolver color.VarResolver) *PickerService {
	t.Helper()
	return NewPickerService(cfg, resolver, zap.NewNop())
}

// TestPickerService_Defaults 初始狀態遵循配置的默認顏色與格式
func TestPickerService_Defaults(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "hex",
		AlphaEnabled: true,
		DefaultColor: "#336699",
	}, nil)

	assert.NotEmpty(t, svc.ID())
	assert.Equal(t, color.RGBA{R: 51, G: 102, B: 153, A: 1}, svc.State().RGBA())
	assert.Equal(t, "#336699", svc.Display())
}

// TestPickerService_DefaultColorVar 默認顏色允許是變量引用
func TestPickerService_DefaultColorVar(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "hex",
		DefaultColor: "var(--brand)",
	}, mapResolver{"--brand": "#336699"})

	assert.Equal(t, "#336699", svc.Display())
}

// TestPickerService_InvalidFormatFallsBack 非法格式回退 hex
func TestPickerService_InvalidFormatFallsBack(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{Format: "oklch"}, nil)
	assert.Equal(t, color.FormatHex, svc.Format())
}

// TestPickerService_OpenClose 生命週期事件的派發與去重
func TestPickerService_OpenClose(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{Format: "hex"}, nil)

	var events []Event
	svc.On(EventOpen, func(ev Event) { events = append(events, ev) })
	svc.On(EventClose, func(ev Event) { events = append(events, ev) })

	svc.Open()
	svc.Open() // 重複打開不重複派發
	svc.Close()
	svc.Close()

	require.Len(t, events, 2)
	assert.Equal(t, EventOpen, events[0].Type)
	assert.Equal(t, EventClose, events[1].Type)
	assert.Equal(t, svc.ID(), events[0].Instance)
}

// TestPickerService_ApplyString 字符串輸入更新狀態並派發 input 事件
func TestPickerService_ApplyString(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "auto",
		AlphaEnabled: true,
	}, nil)

	var inputs []Event
	svc.On(EventInput, func(ev Event) { inputs = append(inputs, ev) })

	assert.True(t, svc.ApplyString("rgb(255, 0, 0)"))
	require.Len(t, inputs, 1)
	assert.Equal(t, color.RGBA{R: 255, A: 1}, inputs[0].Color)
	// auto 格式跟隨最近一次成功解析的輸入格式
	assert.Equal(t, "rgb(255, 0, 0)", svc.Display())
}

// TestPickerService_ApplyStringInvalid 不可解析的輸入退化為不透明黑色
func TestPickerService_ApplyStringInvalid(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "hex",
		DefaultColor: "#336699",
	}, nil)

	assert.False(t, svc.ApplyString("not a color"))
	assert.Equal(t, color.RGBA{A: 1}, svc.State().RGBA())
	assert.Equal(t, "#000000", svc.Display())
}

// TestPickerService_ApplyStringVarWithoutResolver 無解析能力時保持原狀態
func TestPickerService_ApplyStringVarWithoutResolver(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "hex",
		DefaultColor: "#336699",
	}, nil)

	assert.False(t, svc.ApplyString("var(--brand)"))
	assert.Equal(t, "#336699", svc.Display())
}

// TestPickerService_ApplyHSVA 分量交互更新，越界取值被鉗制
func TestPickerService_ApplyHSVA(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{Format: "hex"}, nil)

	svc.ApplyHSVA(color.HSVA{H: 400, S: 150, V: -5, A: 2})

	st := svc.State()
	assert.Equal(t, 360, st.H)
	assert.Equal(t, 100, st.S)
	assert.Equal(t, 0, st.V)
	assert.Equal(t, 1.0, st.A)
}

// TestPickerService_Commit change 事件攜帶格式化後的顯示字符串
func TestPickerService_Commit(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "rgb",
		AlphaEnabled: true,
	}, nil)

	var changes []Event
	svc.On(EventChange, func(ev Event) { changes = append(changes, ev) })

	svc.ApplyString("#ff0000")
	got := svc.Commit()

	require.Len(t, changes, 1)
	assert.Equal(t, "rgb(255, 0, 0)", got)
	assert.Equal(t, got, changes[0].Value)
}

// TestPickerService_AlphaGating Alpha 通道的輸出開關
func TestPickerService_AlphaGating(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{
		Format:       "hex",
		AlphaEnabled: false,
	}, nil)

	svc.ApplyString("rgba(255, 0, 0, 0.5)")
	assert.Equal(t, "#ff0000", svc.Display(), "Alpha 關閉時不輸出通道")

	svc.SetAlphaEnabled(true)
	assert.Equal(t, "#ff00007f", svc.Display())

	svc.ApplyString("#ff0000")
	assert.Equal(t, "#ff0000", svc.Display())

	svc.SetForceAlpha(true)
	assert.Equal(t, "#ff0000ff", svc.Display(), "強制 Alpha 時即便不透明也輸出通道")
}

// TestPickerService_SetFormat 非法格式被忽略
func TestPickerService_SetFormat(t *testing.T) {
	svc := newTestPicker(t, domainConfig.PickerConfig{Format: "hex"}, nil)

	svc.SetFormat(color.FormatHSL)
	assert.Equal(t, color.FormatHSL, svc.Format())

	svc.SetFormat(color.Format("oklch"))
	assert.Equal(t, color.FormatHSL, svc.Format())
}
