package scenes

import (
	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/render"
)

// IntroPhase is the first phase of a session.
// It registers keyboard input and starts the first round on the next tick.
type IntroPhase struct {
	phases *Phases
}

// Name implements game.Phase.
func (p *IntroPhase) Name() string { return "intro" }

// Step enables input delivery and hands over to the play phase.
func (p *IntroPhase) Step(s *game.Session, now float64) game.Phase {
	s.LastTime = now
	s.InputEnabled = true
	return p.phases.Play
}

// Draw implements game.Phase.
func (p *IntroPhase) Draw(s *game.Session, surface render.Surface) {
	p.phases.renderer.Clear(surface)
}
