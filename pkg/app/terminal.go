package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/render"
	"github.com/decker502/fightingboxes/pkg/systems"
)

// terminalFrame 终端前端的 tick 间隔（约 60 FPS）
const terminalFrame = 16 * time.Millisecond

// TerminalApp 终端前端
//
// 用 tcell 绘制竞技场，每个字符格对应竞技场中的一块区域。
// 终端没有按键松开事件，按键通过 HeldKeySource 视为按住一段时间。
type TerminalApp struct {
	sim     *Simulation
	screen  tcell.Screen
	keys    *systems.HeldKeySource
	input   *systems.InputSystem
	surface *render.TerminalSurface

	clock func() time.Time
	start time.Time
}

// NewTerminalApp 创建终端前端
//
// 参数：
//   - sim: 模拟核心
//   - screen: 已经 Init 的 tcell 屏幕，由调用方负责 Fini
func NewTerminalApp(sim *Simulation, screen tcell.Screen) *TerminalApp {
	keys := systems.NewHeldKeySource(sim.Arena.TerminalKeyHoldMs)
	a := &TerminalApp{
		sim:     sim,
		screen:  screen,
		keys:    keys,
		input:   sim.NewInput(keys),
		surface: render.NewTerminalSurface(screen, sim.Arena.Width, sim.Arena.Height),
		clock:   time.Now,
	}
	a.start = a.clock()
	return a
}

// Run 运行主循环，直到 ctx 取消或用户退出（Esc、Ctrl-C、q）
func (a *TerminalApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(terminalFrame)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				a.sim.Logger.Info("terminal frontend closed by user")
				return nil
			}

		case <-ticker.C:
			if err := a.tick(a.elapsed()); err != nil {
				a.sim.Logger.Warn("tick skipped", zap.Error(err))
			}
		}
	}
}

// tick 推进一个 tick 并刷新屏幕
func (a *TerminalApp) tick(now float64) error {
	if err := a.sim.Frame(a.input, now); err != nil {
		return err
	}
	a.sim.Machine.Draw(a.surface)
	a.screen.Show()
	return nil
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (a *TerminalApp) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := a.elapsed()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.keys.Press(config.KeySpeedUp, now)
		case tcell.KeyDown:
			a.keys.Press(config.KeySlowDown, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'm', 'M':
				a.keys.Press(KeyToggleSound, now)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// elapsed 返回启动以来的毫秒数
func (a *TerminalApp) elapsed() float64 {
	return float64(a.clock().Sub(a.start)) / float64(time.Millisecond)
}
