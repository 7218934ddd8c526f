package scenes

import (
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/render"
)

// RestartPhase replaces the finished round with a fresh one.
type RestartPhase struct {
	phases *Phases
}

// Name implements game.Phase.
func (p *RestartPhase) Name() string { return "restart" }

// Step implements game.Phase.
// If the new round cannot be created the phase retries on the next tick.
func (p *RestartPhase) Step(s *game.Session, now float64) game.Phase {
	s.LastTime = now
	if err := s.NewRound(); err != nil {
		s.Logger.Error("failed to start new round", zap.Error(err))
		return p
	}
	return p.phases.Play
}

// Draw implements game.Phase.
func (p *RestartPhase) Draw(s *game.Session, surface render.Surface) {
	p.phases.renderer.Clear(surface)
}
