// Package render 定义绘制接口及其终端、录制两种实现（ebiten 实现在 window 包）
package render

import "image/color"

// FontSize 字号（像素）
type FontSize int

const (
	// FontOverlay 覆盖层文字（结算、胜场统计）
	FontOverlay FontSize = 30
	// FontLabel 方块上方的生命值/攻击力标签
	FontLabel FontSize = 10
)

// Surface 绘制目标
//
// 坐标单位为竞技场像素，原点在左上角。
// FillText 的 y 为文字基线。
type Surface interface {
	// Clear 用指定颜色填充整个画面
	Clear(clr color.Color)
	// FillRect 绘制实心矩形
	FillRect(x, y, w, h float64, clr color.Color)
	// FillText 绘制文字
	FillText(text string, x, y float64, size FontSize, clr color.Color)
}
