package scenes

import (
	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/systems"
)

// Phase is a type alias for game.Phase.
// All phase implementations in this package implement the game.Phase interface.
type Phase = game.Phase

// Phases holds one instance of every top-level phase so that phases can hand
// control to each other without allocating on every tick.
type Phases struct {
	Intro    *IntroPhase
	Play     *PlayPhase
	GameOver *GameOverPhase
	Stats    *StatsPhase
	Restart  *RestartPhase

	physics  *systems.PhysicsSystem
	renderer *systems.RenderSystem
}

// NewPhases wires the phase cycle Intro → Play → GameOver → Stats → Restart → Play.
func NewPhases(physics *systems.PhysicsSystem, renderer *systems.RenderSystem) *Phases {
	p := &Phases{
		physics:  physics,
		renderer: renderer,
	}
	p.Intro = &IntroPhase{phases: p}
	p.Play = &PlayPhase{phases: p}
	p.GameOver = &GameOverPhase{phases: p}
	p.Stats = &StatsPhase{phases: p}
	p.Restart = &RestartPhase{phases: p}
	return p
}

// NewMachine creates a phase machine that starts at the intro phase.
func (p *Phases) NewMachine(session *game.Session) *game.PhaseMachine {
	return game.NewPhaseMachine(session, p.Intro)
}
