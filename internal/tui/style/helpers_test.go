package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/Yat-Muk/pigment/internal/domain/color"
)

func TestTermColor(t *testing.T) {
	c := TermColor(color.RGBA{R: 51, G: 102, B: 153, A: 1})
	assert.Equal(t, lipgloss.Color("#336699"), c)
}

func TestBlendOverDark(t *testing.T) {
	// 不透明顏色原樣返回
	opaque := color.RGBA{R: 255, G: 0, B: 0, A: 1}
	assert.Equal(t, opaque, BlendOverDark(opaque))

	// 半透明紅疊在 #1a1a1a 上
	blended := BlendOverDark(color.RGBA{R: 255, A: 0.5})
	assert.Equal(t, 1.0, blended.A)
	assert.InDelta(t, 140, blended.R, 1)
	assert.InDelta(t, 13, blended.G, 1)
}

func TestContrastForeground(t *testing.T) {
	white := ContrastForeground(color.RGBA{R: 255, G: 255, B: 255, A: 1})
	assert.Equal(t, lipgloss.Color("#000000"), white)

	dark := ContrastForeground(color.RGBA{R: 20, G: 20, B: 40, A: 1})
	assert.Equal(t, lipgloss.Color("#ffffff"), dark)
}
