package scenes

import (
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/render"
	"github.com/decker502/fightingboxes/pkg/systems"
)

// PlayPhase runs the simulation until a single team is left alive.
type PlayPhase struct {
	phases *Phases
}

// Name implements game.Phase.
func (p *PlayPhase) Name() string { return "play" }

// Step advances the round by the scaled time elapsed since the previous tick.
//
// When exactly one team still has living agents, the win is recorded and the
// session moves to the game over phase. No living team at all keeps the
// round running.
func (p *PlayPhase) Step(s *game.Session, now float64) game.Phase {
	world := s.World
	world.ResetFrame()

	s.TimeScale = systems.TimeScale(world.Input, s.Config)
	dt := (now - s.LastTime) * s.TimeScale

	result := p.phases.physics.Update(world, dt)
	s.LastTime = now

	if result.DamageEvents > 0 {
		s.Sound.PlayHit()
	}

	teams := world.TeamsAlive()
	if len(teams) != 1 {
		return p
	}

	s.Winner = teams[0]
	if err := s.Tally.RecordWin(s.Winner); err != nil {
		s.Logger.Warn("failed to persist win", zap.String("team", s.Winner), zap.Error(err))
	}
	s.Logger.Info("round finished",
		zap.String("round_id", world.RoundID.String()),
		zap.String("winner", s.Winner),
	)
	s.Sound.PlayVictory()
	s.GameOverStart = now
	return p.phases.GameOver
}

// Draw renders every agent of the current round.
func (p *PlayPhase) Draw(s *game.Session, surface render.Surface) {
	p.phases.renderer.Clear(surface)
	p.phases.renderer.DrawWorld(surface, s.World)
}
