package utils

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors 内置调色板（CSS 颜色名）
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"blue":   "#0000ff",
	"green":  "#008000",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"teal":   "#008080",
	"brown":  "#a52a2a",
	"purple": "#800080",
	"gray":   "#808080",
	"pink":   "#ffc0cb",
	"cyan":   "#00ffff",
}

// Palette 颜色名到颜色的解析器
// 先查自定义映射，再查内置调色板，最后把名字本身当作十六进制色值解析
type Palette struct {
	overrides map[string]string
	cache     map[string]color.RGBA
}

// NewPalette 创建调色板
//
// 参数：
//   - overrides: 自定义颜色映射（可为 nil），值为 "#rrggbb" 格式
func NewPalette(overrides map[string]string) *Palette {
	return &Palette{
		overrides: overrides,
		cache:     make(map[string]color.RGBA),
	}
}

// Resolve 解析颜色名
//
// 返回：
//   - color.RGBA: 不透明颜色
//   - error: 名字既不在调色板中也不是合法的十六进制色值时返回错误
func (p *Palette) Resolve(name string) (color.RGBA, error) {
	if c, ok := p.cache[name]; ok {
		return c, nil
	}

	hex := name
	if v, ok := p.overrides[name]; ok {
		hex = v
	} else if v, ok := namedColors[strings.ToLower(name)]; ok {
		hex = v
	}

	c, err := ParseHexColor(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q: %w", name, err)
	}

	p.cache[name] = c
	return c, nil
}

// MustResolve 解析颜色名，失败时返回品红色以便在画面上一眼看出
func (p *Palette) MustResolve(name string) color.RGBA {
	c, err := p.Resolve(name)
	if err != nil {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return c
}

// ParseHexColor 解析 "#rrggbb" 格式的色值
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
