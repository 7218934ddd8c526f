package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	rec.FillRect(1, 2, 3, 4, color.White)
	rec.FillText("a", 5, 6, FontLabel, color.Black)
	assert.Len(t, rec.Ops, 2)

	// Clear 开始新的一帧
	rec.Clear(color.Black)
	rec.FillText("b", 0, 0, FontOverlay, color.White)
	rec.FillRect(0, 0, 1, 1, nil)

	assert.Equal(t, OpClear, rec.Ops[0].Kind)
	assert.Equal(t, []string{"b"}, rec.Texts())
	assert.Equal(t, []Op{{Kind: OpRect, W: 1, H: 1}}, rec.Rects())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rec.Ops[1].RGBA)
}
