package game

import "github.com/decker502/fightingboxes/pkg/render"

// Phase 顶层状态机的一个阶段（开场、对战、结算、统计、重开）
//
// 每个 tick 只调用当前阶段的一次 Step，Step 返回下一个 tick 要执行的阶段
// （可以是自己）。阶段之间只通过 Session 共享状态。
type Phase interface {
	// Name 阶段名，用于日志
	Name() string

	// Step 执行一个 tick
	// now 为单调递增的帧时间戳（毫秒）
	Step(s *Session, now float64) Phase

	// Draw 绘制阶段画面
	Draw(s *Session, surface render.Surface)
}
