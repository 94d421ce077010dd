package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/domain/swatch"
	"github.com/Yat-Muk/pigment/internal/tui/types"
)

func TestUIState_SwitchView(t *testing.T) {
	ui := NewUIState()
	assert.Equal(t, MainMenuView, ui.CurrentView)

	ui.TextInput.SetValue("leftover")
	ui.SetStatus(StatusSuccess, "ok", "", false)

	cmd := ui.SwitchView(PickerView)
	assert.NotNil(t, cmd)
	assert.Equal(t, PickerView, ui.CurrentView)
	assert.Equal(t, MainMenuView, ui.PreviousView)
	assert.Empty(t, ui.GetInputBuffer(), "切換視圖時清空輸入")
	assert.Equal(t, StatusReady, ui.Status.Type)
}

// 錯誤狀態在切換視圖時保留給用戶看
func TestUIState_SwitchViewKeepsError(t *testing.T) {
	ui := NewUIState()
	ui.SetStatus(StatusError, "解析失敗", "", false)

	ui.SwitchView(ColorInputView)
	assert.Equal(t, StatusError, ui.Status.Type)
}

func TestPickerState_Moves(t *testing.T) {
	p := NewPickerState()
	p.Current.SetHSVA(color.HSVA{H: 210, S: 50, V: 50, A: 1})

	assert.Equal(t, 55, p.MoveSaturation(SaturationStep).S)
	assert.Equal(t, 45, p.MoveValue(-ValueStep).V)

	// 色相環繞
	p.Current.SetHSVA(color.HSVA{H: 350, S: 50, V: 50, A: 1})
	assert.Equal(t, 5, p.MoveHue(HueStep).H)
	p.Current.SetHSVA(color.HSVA{H: 5, S: 50, V: 50, A: 1})
	assert.Equal(t, 350, p.MoveHue(-HueStep).H)

	// Alpha 鉗制
	p.Current.SetHSVA(color.HSVA{H: 0, S: 0, V: 0, A: 0.02})
	assert.Equal(t, 0.0, p.MoveAlpha(-AlphaStep).A)
}

func TestPickerState_MoveClamps(t *testing.T) {
	p := NewPickerState()
	p.Current.SetHSVA(color.HSVA{H: 0, S: 98, V: 2, A: 1})

	assert.Equal(t, 100, p.MoveSaturation(SaturationStep).S)
	assert.Equal(t, 0, p.MoveValue(-ValueStep).V)
}

func TestEventState_Capacity(t *testing.T) {
	e := NewEventState()
	for i := 0; i < eventLogCapacity+10; i++ {
		e.Add(types.EventRow{Type: "input"})
	}
	assert.Len(t, e.Rows(), eventLogCapacity)

	e.Add(types.EventRow{Type: "change", Value: "#ff0000"})
	assert.Equal(t, "change", e.Rows()[0].Type, "最新記錄在前")

	e.Clear()
	assert.Empty(t, e.Rows())
}

func TestSwatchState_At(t *testing.T) {
	s := NewSwatchState()
	s.SetEntries([]swatch.Swatch{
		{Label: "#264653", Value: color.RGBA{R: 38, G: 70, B: 83, A: 1}},
		{Label: "--brand", Value: color.RGBA{R: 51, G: 102, B: 153, A: 1}, IsVar: true},
	})

	entry, ok := s.At(2)
	assert.True(t, ok)
	assert.Equal(t, "--brand", entry.Label)

	_, ok = s.At(0)
	assert.False(t, ok)
	_, ok = s.At(3)
	assert.False(t, ok)
}
