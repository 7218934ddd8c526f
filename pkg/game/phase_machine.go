package game

import (
	"errors"

	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/render"
)

// ErrReentrantTick 在一个 tick 尚未结束时再次调用 Tick
var ErrReentrantTick = errors.New("phase machine: tick already in progress")

// PhaseMachine 顶层状态机驱动
//
// 外层循环（ebiten 的 Update 或终端前端的定时器）每帧调用一次 Tick，
// 当前阶段执行完毕并交出下一个阶段后，下一次 Tick 才会开始。
type PhaseMachine struct {
	session *Session
	current Phase
	ticking bool
	ticks   uint64
	logger  *zap.Logger
}

// NewPhaseMachine 创建状态机
//
// 参数：
//   - session: 模拟上下文
//   - initial: 第一个 tick 执行的阶段
func NewPhaseMachine(session *Session, initial Phase) *PhaseMachine {
	logger := zap.NewNop()
	if session != nil && session.Logger != nil {
		logger = session.Logger
	}
	return &PhaseMachine{
		session: session,
		current: initial,
		logger:  logger.Named("phase"),
	}
}

// Tick 执行当前阶段的一个 tick
//
// 返回：
//   - error: 上一个 tick 未结束时返回 ErrReentrantTick，本次调用不执行任何操作
func (pm *PhaseMachine) Tick(now float64) error {
	if pm.ticking {
		return ErrReentrantTick
	}
	if pm.current == nil {
		return nil
	}

	pm.ticking = true
	defer func() { pm.ticking = false }()

	pm.ticks++
	next := pm.current.Step(pm.session, now)
	if next == nil {
		next = pm.current
	}

	if next.Name() != pm.current.Name() {
		pm.logger.Debug("phase transition",
			zap.String("from", pm.current.Name()),
			zap.String("to", next.Name()),
			zap.Float64("at_ms", now),
		)
	}
	pm.current = next
	return nil
}

// Draw 绘制当前阶段
func (pm *PhaseMachine) Draw(surface render.Surface) {
	if pm.current != nil {
		pm.current.Draw(pm.session, surface)
	}
}

// Current 返回当前阶段
func (pm *PhaseMachine) Current() Phase {
	return pm.current
}

// Session 返回模拟上下文
func (pm *PhaseMachine) Session() *Session {
	return pm.session
}

// Ticks 返回已执行的 tick 数
func (pm *PhaseMachine) Ticks() uint64 {
	return pm.ticks
}
