package scenes

import (
	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/render"
)

// 覆盖层文字起点
const (
	overlayX     = 10.0
	overlayY     = 50.0
	overlayLineH = 30.0
)

// GameOverPhase announces the winner for GameOverDurationMs.
type GameOverPhase struct {
	phases *Phases
}

// Name implements game.Phase.
func (p *GameOverPhase) Name() string { return "game_over" }

// Step waits until the announcement has been shown long enough.
func (p *GameOverPhase) Step(s *game.Session, now float64) game.Phase {
	s.LastTime = now
	if now-s.GameOverStart > s.Config.GameOverDurationMs {
		s.StatsStart = now
		return p.phases.Stats
	}
	return p
}

// Draw implements game.Phase.
func (p *GameOverPhase) Draw(s *game.Session, surface render.Surface) {
	r := p.phases.renderer
	r.Clear(surface)
	r.DrawText(surface, "Game Over, winner: "+s.Winner, overlayX, overlayY, r.TextColor())
}
