package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface 把竞技场像素坐标缩放到终端字符格上绘制
//
// 矩形用背景色填充字符格，文字逐字符写入，背景保留原有颜色。
// 一个像素坐标对应的字符格为 floor(x*cols/width), floor(y*rows/height)。
type TerminalSurface struct {
	screen tcell.Screen
	width  float64
	height float64
}

// NewTerminalSurface 创建终端绘制目标
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - width, height: 竞技场尺寸（像素）
func NewTerminalSurface(screen tcell.Screen, width, height float64) *TerminalSurface {
	return &TerminalSurface{screen: screen, width: width, height: height}
}

// Clear 实现 Surface
func (s *TerminalSurface) Clear(clr color.Color) {
	style := tcell.StyleDefault.Background(toTcell(clr))
	s.screen.Fill(' ', style)
}

// FillRect 实现 Surface
// 至少占一个字符格，保证小方块在终端上也可见
func (s *TerminalSurface) FillRect(x, y, w, h float64, clr color.Color) {
	cols, rows := s.screen.Size()
	c0, r0 := s.cell(x, y, cols, rows)
	c1, r1 := s.cellEnd(x+w, y+h, cols, rows)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	style := tcell.StyleDefault.Background(toTcell(clr))
	for r := r0; r < r1 && r < rows; r++ {
		for c := c0; c < c1 && c < cols; c++ {
			s.screen.SetContent(c, r, ' ', nil, style)
		}
	}
}

// FillText 实现 Surface
// 基线所在的字符格作为文字所在行；字号在终端上没有意义
func (s *TerminalSurface) FillText(str string, x, y float64, size FontSize, clr color.Color) {
	cols, rows := s.screen.Size()
	c, r := s.cell(x, y, cols, rows)
	if r >= rows {
		return
	}

	fg := toTcell(clr)
	for _, ch := range str {
		if c >= cols {
			break
		}
		_, _, style, _ := s.screen.GetContent(c, r)
		_, bg, _ := style.Decompose()
		s.screen.SetContent(c, r, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		c++
	}
}

// cell 返回像素坐标所在的字符格
func (s *TerminalSurface) cell(x, y float64, cols, rows int) (int, int) {
	c := int(math.Floor(x * float64(cols) / s.width))
	r := int(math.Floor(y * float64(rows) / s.height))
	return clampInt(c, 0, cols-1), clampInt(r, 0, rows-1)
}

// cellEnd 返回像素区间右/下边界对应的字符格（不含）
func (s *TerminalSurface) cellEnd(x, y float64, cols, rows int) (int, int) {
	c := int(math.Ceil(x * float64(cols) / s.width))
	r := int(math.Ceil(y * float64(rows) / s.height))
	return clampInt(c, 0, cols), clampInt(r, 0, rows)
}

func toTcell(clr color.Color) tcell.Color {
	if clr == nil {
		return tcell.ColorDefault
	}
	rgba := color.RGBAModel.Convert(clr).(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
