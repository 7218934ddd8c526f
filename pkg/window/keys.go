package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource 通过 inpututil 读取 ebiten 的键盘状态，实现 systems.KeySource
type KeySource struct {
	keys []ebiten.Key
}

// NewKeySource 创建 ebiten 按键来源
func NewKeySource() *KeySource {
	return &KeySource{keys: make([]ebiten.Key, 0, 8)}
}

// Poll 实现 systems.KeySource
// 必须在 ebiten 的 Update 中调用
func (s *KeySource) Poll(now float64) (pressed, released []string) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		pressed = append(pressed, k.String())
	}

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		released = append(released, k.String())
	}
	return pressed, released
}
