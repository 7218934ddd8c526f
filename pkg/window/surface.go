package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/fightingboxes/pkg/render"
)

// FontCache 按字号缓存字体
// 所有字号共享同一个 Go Regular 字体源
type FontCache struct {
	source *text.GoTextFaceSource
	faces  map[render.FontSize]*text.GoTextFace
}

// NewFontCache 加载内置字体
//
// 返回:
//   - *FontCache: 字体缓存
//   - error: 字体数据无法解析时返回错误
func NewFontCache() (*FontCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FontCache{
		source: source,
		faces:  make(map[render.FontSize]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的字体，首次使用时创建
func (fc *FontCache) Face(size render.FontSize) *text.GoTextFace {
	if face, ok := fc.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    fc.source,
		Size:      float64(size),
		Direction: text.DirectionLeftToRight,
	}
	fc.faces[size] = face
	return face
}

// Surface 在 ebiten 屏幕上绘制，实现 render.Surface
// 每次 Draw 回调用当帧的 screen 创建
type Surface struct {
	screen *ebiten.Image
	fonts  *FontCache
}

// NewSurface 创建 ebiten 绘制目标
func NewSurface(screen *ebiten.Image, fonts *FontCache) *Surface {
	return &Surface{screen: screen, fonts: fonts}
}

// Clear 实现 render.Surface
func (s *Surface) Clear(clr color.Color) {
	s.screen.Fill(clr)
}

// FillRect 实现 render.Surface
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// FillText 实现 render.Surface
// y 为基线，ebiten 的文字原点在行顶部，需要减去上升高度
func (s *Surface) FillText(str string, x, y float64, size render.FontSize, clr color.Color) {
	if s.fonts == nil {
		return
	}
	face := s.fonts.Face(size)
	metrics := face.Metrics()

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-metrics.HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.screen, str, face, op)
}
