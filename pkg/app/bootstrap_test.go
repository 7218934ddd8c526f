package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/decker502/fightingboxes/pkg/game"
)

// scriptedKeySource 按帧返回预设的按下事件
type scriptedKeySource struct {
	pressed [][]string
	polls   int
}

func (s *scriptedKeySource) Poll(now float64) (pressed, released []string) {
	if s.polls < len(s.pressed) {
		pressed = s.pressed[s.polls]
	}
	s.polls++
	return pressed, nil
}

func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	sim, err := NewSimulation(Config{Seed: 42, NoStore: true}, nil)
	require.NoError(t, err)
	return sim
}

func TestNewSimulation_Defaults(t *testing.T) {
	sim := newTestSimulation(t)

	assert.Equal(t, uint64(42), sim.Seed)
	assert.False(t, sim.Session.Tally.HasStore())
	assert.Equal(t, "intro", sim.Machine.Current().Name())
	assert.Len(t, sim.Session.World.Agents(), sim.Arena.AgentCount())
	assert.Equal(t, *game.DefaultSettings(), sim.Settings.Settings())
}

func TestNewSimulation_RandomSeed(t *testing.T) {
	sim, err := NewSimulation(Config{NoStore: true}, nil)
	require.NoError(t, err)
	assert.NotZero(t, sim.Seed)
}

func TestNewSimulation_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("teamSize: 2\nteams: [red, blue]\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	sim, err := NewSimulation(Config{ConfigPath: path, Seed: 1, NoStore: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "blue"}, sim.Arena.Teams)
	assert.Len(t, sim.Session.World.Agents(), 4)
}

func TestNewSimulation_BadConfig(t *testing.T) {
	_, err := NewSimulation(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teamSize: -1\n"), 0o644))
	_, err = NewSimulation(Config{ConfigPath: path, NoStore: true}, nil)
	assert.Error(t, err)
}

func TestNewSimulation_LogsSeed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	_, err := NewSimulation(Config{Seed: 7, NoStore: true}, zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("simulation ready").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(7), entries[0].ContextMap()["seed"])
	assert.Equal(t, false, entries[0].ContextMap()["persistent"])
}

func TestSimulation_ToggleSound(t *testing.T) {
	sim := newTestSimulation(t)
	sim.applySoundSettings()
	assert.Same(t, sim.Sound, sim.Session.Sound)

	sim.ToggleSound()
	assert.False(t, sim.Settings.Settings().SoundEnabled)
	assert.Equal(t, game.NopSoundCue{}, sim.Session.Sound)

	sim.ToggleSound()
	assert.True(t, sim.Settings.Settings().SoundEnabled)
	assert.Same(t, sim.Sound, sim.Session.Sound)
}

func TestSimulation_Frame(t *testing.T) {
	sim := newTestSimulation(t)
	source := &scriptedKeySource{pressed: [][]string{nil, {KeyToggleSound}}}
	input := sim.NewInput(source)

	require.NoError(t, sim.Frame(input, 0))
	assert.Equal(t, "play", sim.Machine.Current().Name())
	assert.True(t, sim.Session.InputEnabled)

	// 热键切换音效，同时按键照常写入输入状态
	require.NoError(t, sim.Frame(input, 16))
	assert.False(t, sim.Settings.Settings().SoundEnabled)
	assert.True(t, sim.Session.World.Input.IsHeld(KeyToggleSound))
	assert.Equal(t, uint64(2), sim.Machine.Ticks())
}
