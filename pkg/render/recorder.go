package render

import "image/color"

// OpKind 绘制操作类型
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpText
)

// Op 一次绘制操作
type Op struct {
	Kind OpKind
	X, Y float64
	W, H float64
	Text string
	Size FontSize
	RGBA color.RGBA
}

// Recorder 记录绘制操作的 Surface，用于测试和无界面运行
type Recorder struct {
	Ops []Op
}

// NewRecorder 创建空的记录器
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear 实现 Surface；清空之前记录的操作
func (r *Recorder) Clear(clr color.Color) {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear, RGBA: toRGBA(clr)})
}

// FillRect 实现 Surface
func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, RGBA: toRGBA(clr)})
}

// FillText 实现 Surface
func (r *Recorder) FillText(text string, x, y float64, size FontSize, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Size: size, RGBA: toRGBA(clr)})
}

// Texts 按顺序返回所有文字
func (r *Recorder) Texts() []string {
	texts := make([]string, 0)
	for _, op := range r.Ops {
		if op.Kind == OpText {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// Rects 按顺序返回所有矩形操作
func (r *Recorder) Rects() []Op {
	rects := make([]Op, 0)
	for _, op := range r.Ops {
		if op.Kind == OpRect {
			rects = append(rects, op)
		}
	}
	return rects
}

func toRGBA(clr color.Color) color.RGBA {
	if clr == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
