package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/utils"
)

func TestNewWorld(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	world, err := NewWorld(cfg, utils.NewSeededRandom(5))
	require.NoError(t, err)

	agents := world.Agents()
	require.Len(t, agents, 21)

	// 按轮次创建：每轮按队伍顺序各一个
	for i, agent := range agents {
		assert.EqualValues(t, i+1, agent.ID)
		assert.Equal(t, cfg.Teams[i%len(cfg.Teams)], agent.Team.Label)
		assert.Equal(t, agent.Team.Label, agent.Color.Color)
		assert.True(t, agent.Alive())
		assert.Equal(t, 10, agent.Health.HitPoints)
		assert.Equal(t, 3, agent.Combat.Heals)
		assert.Contains(t, []int{1, 2}, agent.Combat.Strength)
	}

	assert.Equal(t, cfg.Teams, world.TeamsAlive())
	assert.Empty(t, world.Collisions)
	assert.NotEqual(t, [16]byte{}, [16]byte(world.RoundID))
}

func TestNewWorldFromContinuesIDs(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Teams = []string{"red", "blue"}
	cfg.TeamSize = 2

	first, err := NewWorld(cfg, utils.NewSeededRandom(1))
	require.NoError(t, err)
	second, err := NewWorldFrom(cfg, utils.NewSeededRandom(1), ecsFirstID(first))
	require.NoError(t, err)

	agents := second.Agents()
	require.Len(t, agents, 4)
	assert.EqualValues(t, 5, agents[0].ID)
	assert.EqualValues(t, 8, agents[3].ID)
	assert.NotEqual(t, first.RoundID, second.RoundID)

	assert.EqualValues(t, 1, ecsFirstID(nil))
}

func TestNewWorldNilConfig(t *testing.T) {
	_, err := NewWorld(nil, utils.NewSeededRandom(1))
	assert.Error(t, err)
}

func TestWorld_TeamsAlive(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Teams = []string{"red", "blue", "green"}
	cfg.TeamSize = 2
	world, err := NewWorld(cfg, utils.NewSeededRandom(9))
	require.NoError(t, err)

	agents := world.Agents()
	// 红队全灭，蓝队剩一个
	agents[0].Health.TakeDamage(10)
	agents[3].Health.TakeDamage(10)
	agents[1].Health.TakeDamage(10)
	assert.Equal(t, []string{"green", "blue"}, world.TeamsAlive())

	agents[2].Health.TakeDamage(10)
	agents[5].Health.TakeDamage(10)
	assert.Equal(t, []string{"blue"}, world.TeamsAlive())

	agents[4].Health.TakeDamage(10)
	assert.Empty(t, world.TeamsAlive())
}

func TestWorld_Collisions(t *testing.T) {
	world, err := NewWorld(config.DefaultArenaConfig(), utils.NewSeededRandom(2))
	require.NoError(t, err)

	world.RecordCollision(1, 2)
	world.RecordCollision(3, 4)
	assert.Equal(t, []CollisionPair{{A: 1, B: 2}, {A: 3, B: 4}}, world.Collisions)

	world.ResetFrame()
	assert.Empty(t, world.Collisions)
}
