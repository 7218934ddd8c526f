package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func TestTerminalSurface_Clear(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)

	surface.Clear(color.Black)

	for _, pos := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		mainc, _, style, _ := screen.GetContent(pos[0], pos[1])
		_, bg, _ := style.Decompose()
		assert.Equal(t, ' ', mainc)
		assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
	}
}

func TestTerminalSurface_FillRect(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)
	surface.Clear(color.Black)

	red := color.RGBA{R: 255, A: 255}
	// 800x600 缩放到 80x24：(100,100) 20x20 对应第 10、11 列，第 4 行
	surface.FillRect(100, 100, 20, 20, red)

	for _, c := range []int{10, 11} {
		_, _, style, _ := screen.GetContent(c, 4)
		_, bg, _ := style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg, "col %d", c)
	}

	_, _, style, _ := screen.GetContent(12, 4)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}

func TestTerminalSurface_FillRectAtEdge(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)
	surface.Clear(color.Black)

	surface.FillRect(780, 580, 20, 20, color.White)

	_, _, style, _ := screen.GetContent(79, 23)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
}

func TestTerminalSurface_FillText(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)
	surface.Clear(color.Black)
	surface.FillRect(10, 50, 10, 25, color.RGBA{B: 255, A: 255})

	surface.FillText("Hi", 10, 50, FontOverlay, color.White)

	// (10,50) 对应第 1 列，第 2 行
	mainc, _, style, _ := screen.GetContent(1, 2)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, 'H', mainc)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	// 文字保留原有背景
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	mainc, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, 'i', mainc)
}

func TestTerminalSurface_TextClipped(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)
	surface.Clear(color.Black)

	assert.NotPanics(t, func() {
		surface.FillText("Game Over, winner: red", 790, 50, FontOverlay, color.White)
		surface.FillText("x", -50, -50, FontLabel, color.White)
	})

	mainc, _, _, _ := screen.GetContent(79, 2)
	assert.Equal(t, 'G', mainc)
}
