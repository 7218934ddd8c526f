package game

// InputState 记录当前按住的按键
//
// 键为符号化的按键编码（如 "ArrowUp"），值为按下时的时间戳（毫秒）。
// 按住期间重复的按下事件会被忽略，松开时删除记录。
type InputState struct {
	held map[string]float64
}

// NewInputState 创建空的输入状态
func NewInputState() *InputState {
	return &InputState{held: make(map[string]float64)}
}

// Press 记录按键按下
// 已经按住的键不会刷新时间戳，返回 false
func (is *InputState) Press(code string, timestamp float64) bool {
	if _, ok := is.held[code]; ok {
		return false
	}
	is.held[code] = timestamp
	return true
}

// Release 记录按键松开
func (is *InputState) Release(code string) {
	delete(is.held, code)
}

// IsHeld 按键是否处于按住状态
func (is *InputState) IsHeld(code string) bool {
	_, ok := is.held[code]
	return ok
}

// PressedAt 返回按键按下的时间戳
func (is *InputState) PressedAt(code string) (float64, bool) {
	ts, ok := is.held[code]
	return ts, ok
}

// Held 返回所有按住的按键编码
func (is *InputState) Held() []string {
	codes := make([]string, 0, len(is.held))
	for code := range is.held {
		codes = append(codes, code)
	}
	return codes
}
