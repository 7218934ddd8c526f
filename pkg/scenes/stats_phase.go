package scenes

import (
	"fmt"

	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/render"
)

// StatsPhase shows the persisted win tally.
//
// Without a store there is nothing to show and the phase is skipped on its
// first tick.
type StatsPhase struct {
	phases *Phases
}

// Name implements game.Phase.
func (p *StatsPhase) Name() string { return "stats" }

// Step implements game.Phase.
func (p *StatsPhase) Step(s *game.Session, now float64) game.Phase {
	s.LastTime = now
	if s.Tally.HasStore() && now-s.StatsStart < s.Config.StatsDurationMs {
		return p
	}
	return p.phases.Restart
}

// Draw lists every team in the tally in its own color.
func (p *StatsPhase) Draw(s *game.Session, surface render.Surface) {
	r := p.phases.renderer
	r.Clear(surface)
	if !s.Tally.HasStore() {
		return
	}

	y := overlayY
	r.DrawText(surface, "Wins:", overlayX, y, r.TextColor())
	for _, entry := range s.Tally.Tally().Entries() {
		y += overlayLineH
		r.DrawText(surface, fmt.Sprintf("%s : %d", entry.Team, entry.Wins), overlayX, y, entry.Team)
	}
}
