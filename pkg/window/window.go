// Package window 用 ebiten 实现窗口前端
//
// 所有依赖 ebiten 的代码都放在这个包里，模拟核心和终端、无头前端不链接 ebiten。
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/app"
	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/systems"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// KeyToggleFullscreen 切换全屏（与 ebiten.Key.String() 一致）
const KeyToggleFullscreen = "F11"

// App 窗口前端，实现 ebiten.Game 接口
type App struct {
	sim   *app.Simulation
	input *systems.InputSystem
	fonts *FontCache
	ticks uint64

	// setFullscreen 切换全屏，测试中替换
	setFullscreen func(enabled bool)

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建窗口前端
//
// 参数：
//   - sim: 模拟核心
//   - source: 按键来源，正常运行时为 NewKeySource()
func NewApp(sim *app.Simulation, source systems.KeySource) (*App, error) {
	fonts, err := NewFontCache()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	a := &App{
		sim:   sim,
		fonts: fonts,
	}
	a.setFullscreen = a.applyFullscreen
	a.input = sim.NewInput(source)
	if !utils.IsMobile() {
		a.input.SetHotkey(KeyToggleFullscreen, a.toggleFullscreen)
	}
	return a, nil
}

// Run 设置窗口并运行 ebiten 主循环，直到窗口关闭
func Run(sim *app.Simulation) error {
	game, err := NewApp(sim, NewKeySource())
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if sim.Settings.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return ebiten.RunGame(game)
}

// Update 推进一个 tick
// 时间戳由 tick 数换算，不受帧率波动影响
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.Layout(0, 0))
			a.pendingWindowSizeReset = false
		}
	}

	now := float64(a.ticks) * 1000 / float64(ebiten.TPS())
	a.ticks++
	return a.sim.Frame(a.input, now)
}

// Draw 绘制当前阶段
func (a *App) Draw(screen *ebiten.Image) {
	a.sim.Machine.Draw(NewSurface(screen, a.fonts))
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回竞技场尺寸作为逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.sim.Arena.Width), int(a.sim.Arena.Height)
}

// Simulation 返回模拟核心
func (a *App) Simulation() *app.Simulation {
	return a.sim
}

func (a *App) toggleFullscreen() {
	enabled := !a.sim.Settings.Settings().Fullscreen
	a.setFullscreen(enabled)
	a.sim.Settings.SetFullscreen(enabled)
	a.sim.Logger.Info("fullscreen toggled", zap.Bool("enabled", enabled))
}

func (a *App) applyFullscreen(enabled bool) {
	if enabled {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
}
