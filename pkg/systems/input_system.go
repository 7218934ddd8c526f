package systems

import (
	"sort"

	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/game"
)

// KeySource 按键事件来源
//
// 每个 tick 调用一次 Poll，返回自上次调用以来按下和松开的按键编码。
type KeySource interface {
	Poll(now float64) (pressed, released []string)
}

// InputSystem 把前端的按键事件转发给 Session
//
// 注册为热键的按键在按下时额外调用对应的回调（如切换音效），
// 这类按键同样会转发给 Session。
type InputSystem struct {
	source  KeySource
	hotkeys map[string]func()
	logger  *zap.Logger
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - source: 按键事件来源
//   - logger: 日志，可为 nil
func NewInputSystem(source KeySource, logger *zap.Logger) *InputSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputSystem{
		source:  source,
		hotkeys: make(map[string]func()),
		logger:  logger.Named("input"),
	}
}

// SetHotkey 注册热键，fn 为 nil 时取消注册
func (s *InputSystem) SetHotkey(code string, fn func()) {
	if fn == nil {
		delete(s.hotkeys, code)
		return
	}
	s.hotkeys[code] = fn
}

// Update 读取按键事件并写入 Session
// 开场阶段注册输入之前的事件由 Session 丢弃
func (s *InputSystem) Update(session *game.Session, now float64) {
	if s.source == nil || session == nil {
		return
	}

	pressed, released := s.source.Poll(now)
	for _, code := range pressed {
		s.logger.Debug("key down", zap.String("code", code), zap.Bool("accepted", session.InputEnabled))
		if fn, ok := s.hotkeys[code]; ok {
			fn()
		}
		session.HandleKeyDown(code, now)
	}
	for _, code := range released {
		s.logger.Debug("key up", zap.String("code", code))
		session.HandleKeyUp(code)
	}
}

// TimeScale 根据按住的按键计算时间倍率
//
// 按住加速键为 FastTimeScale，按住减速键为 SlowTimeScale，两者都按住时加速优先，
// 否则为 1。
func TimeScale(input *game.InputState, cfg *config.ArenaConfig) float64 {
	if input == nil {
		return 1.0
	}
	if input.IsHeld(config.KeySpeedUp) {
		return cfg.FastTimeScale
	}
	if input.IsHeld(config.KeySlowDown) {
		return cfg.SlowTimeScale
	}
	return 1.0
}

// HeldKeySource 为没有按键松开事件的前端（终端）模拟按住状态
//
// 每次 Press 把按键视为按住 hold 毫秒；终端的自动重复会不断刷新到期时间，
// 停止重复后按键在到期时被松开。
type HeldKeySource struct {
	hold    float64
	expires map[string]float64
	pending []string
}

// NewHeldKeySource 创建模拟按住的按键来源
//
// 参数:
//   - holdMs: 一次按键视为按住的时长（毫秒）
func NewHeldKeySource(holdMs float64) *HeldKeySource {
	return &HeldKeySource{
		hold:    holdMs,
		expires: make(map[string]float64),
	}
}

// Press 记录一次按键
// 已经按住的键只刷新到期时间，不会再次产生按下事件
func (s *HeldKeySource) Press(code string, now float64) {
	if _, held := s.expires[code]; !held {
		s.pending = append(s.pending, code)
	}
	s.expires[code] = now + s.hold
}

// Poll 实现 KeySource
func (s *HeldKeySource) Poll(now float64) (pressed, released []string) {
	pressed = s.pending
	s.pending = nil

	for code, expiry := range s.expires {
		if now >= expiry {
			released = append(released, code)
		}
	}
	sort.Strings(released)
	for _, code := range released {
		delete(s.expires, code)
	}
	return pressed, released
}
