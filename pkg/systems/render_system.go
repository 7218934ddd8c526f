package systems

import (
	"fmt"

	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/render"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// 标签相对方块顶部的偏移（像素）
const labelOffsetY = 10

// RenderSystem 把对战状态绘制到 Surface 上
//
// 渲染顺序即方块创建顺序；阵亡的方块仍然绘制，但不显示生命值标签。
type RenderSystem struct {
	cfg     *config.ArenaConfig
	palette *utils.Palette
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - cfg: 竞技场配置（背景色、文字颜色、自定义调色板）
func NewRenderSystem(cfg *config.ArenaConfig) *RenderSystem {
	return &RenderSystem{
		cfg:     cfg,
		palette: utils.NewPalette(cfg.Palette),
	}
}

// Clear 用背景色清空画面
func (s *RenderSystem) Clear(surface render.Surface) {
	surface.Clear(s.palette.MustResolve(s.cfg.BackgroundColor))
}

// DrawWorld 绘制所有方块
// 存活的方块上方显示 "生命值/攻击力" 标签
func (s *RenderSystem) DrawWorld(surface render.Surface, world *game.World) {
	if world == nil {
		return
	}

	labelColor := s.palette.MustResolve(s.cfg.TextColor)
	for _, agent := range world.Agents() {
		pos := agent.Position
		if agent.Alive() {
			label := fmt.Sprintf("%d/%d", agent.Health.HitPoints, agent.Combat.Strength)
			surface.FillText(label, pos.X, pos.Y-labelOffsetY, render.FontLabel, labelColor)
		}
		surface.FillRect(pos.X, pos.Y, agent.Collision.Width, agent.Collision.Height,
			s.palette.MustResolve(agent.Color.Color))
	}
}

// DrawText 绘制覆盖层文字
//
// 参数:
//   - text: 文字内容
//   - x, y: 基线起点
//   - colorName: 颜色名（队伍名或 CSS 颜色名）
func (s *RenderSystem) DrawText(surface render.Surface, text string, x, y float64, colorName string) {
	surface.FillText(text, x, y, render.FontOverlay, s.palette.MustResolve(colorName))
}

// TextColor 覆盖层默认文字颜色名
func (s *RenderSystem) TextColor() string {
	return s.cfg.TextColor
}
