package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/fightingboxes/pkg/components"
	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/ecs"
	"github.com/decker502/fightingboxes/pkg/utils"
)

func TestNewAgentEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArenaConfig()
	// 方向 x/y、位置 x/y、攻击力
	rng := utils.NewSequenceRandom(0, 0.5, 0.5, 0.25, 0.9)

	id, err := NewAgentEntity(em, cfg, rng, "red")
	require.NoError(t, err)
	assert.Equal(t, ecs.EntityID(1), id)

	agent, ok := GetAgent(em, id)
	require.True(t, ok)

	assert.Equal(t, "red", agent.Team.Label)
	assert.Equal(t, "red", agent.Color.Color)
	assert.InDelta(t, 0.1, agent.Velocity.X, 1e-9)
	assert.InDelta(t, 0.3, agent.Velocity.Y, 1e-9)
	assert.InDelta(t, 20+0.5*760, agent.Position.X, 1e-9)
	assert.InDelta(t, 20+0.25*560, agent.Position.Y, 1e-9)
	assert.Equal(t, 2, agent.Combat.Strength)
	assert.Equal(t, components.DefaultHeals, agent.Combat.Heals)
	assert.Equal(t, components.DefaultHitPoints, agent.Health.HitPoints)
	assert.True(t, agent.Alive())
	assert.Equal(t, 20.0, agent.Collision.Width)
	assert.Equal(t, 20.0, agent.Collision.Height)
}

func TestNewAgentEntityStrength(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want int
	}{
		{"取值恰为下界", 0, 1},
		{"小于中点", 0.49, 1},
		{"中点", 0.5, 2},
		{"接近上界", 0.999, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			rng := utils.NewSequenceRandom(0, 0, 0, 0, tt.draw)

			id, err := NewAgentEntity(em, config.DefaultArenaConfig(), rng, "blue")
			require.NoError(t, err)

			agent, ok := GetAgent(em, id)
			require.True(t, ok)
			assert.Equal(t, tt.want, agent.Combat.Strength)
		})
	}
}

func TestNewAgentEntitySpawnBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArenaConfig()
	rng := utils.NewSeededRandom(7)

	for i := 0; i < 200; i++ {
		id, err := NewAgentEntity(em, cfg, rng, "green")
		require.NoError(t, err)

		agent, _ := GetAgent(em, id)
		assert.GreaterOrEqual(t, agent.Position.X, cfg.ObjectSize)
		assert.Less(t, agent.Position.X, cfg.Width-cfg.ObjectSize)
		assert.GreaterOrEqual(t, agent.Position.Y, cfg.ObjectSize)
		assert.Less(t, agent.Position.Y, cfg.Height-cfg.ObjectSize)
		assert.GreaterOrEqual(t, agent.Velocity.X, cfg.MinSpeed)
		assert.Less(t, agent.Velocity.X, cfg.MaxSpeed)
		assert.Contains(t, []int{1, 2}, agent.Combat.Strength)
	}
}

func TestNewAgentEntityInvalidArgs(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	rng := utils.NewSequenceRandom(0.5)

	_, err := NewAgentEntity(nil, cfg, rng, "red")
	assert.Error(t, err)

	_, err = NewAgentEntity(ecs.NewEntityManager(), nil, rng, "red")
	assert.Error(t, err)

	_, err = NewAgentEntity(ecs.NewEntityManager(), cfg, nil, "red")
	assert.Error(t, err)

	em := ecs.NewEntityManager()
	_, err = NewAgentEntity(em, cfg, rng, "")
	assert.Error(t, err)
	assert.Equal(t, 0, em.Count(), "failed creation must not leave an entity behind")
}

func TestNewAgentEntityUnknownTeamColor(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArenaConfig()
	rng := utils.NewSequenceRandom(0.5)

	_, err := NewAgentEntity(em, cfg, rng, "notacolor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notacolor")
	assert.Equal(t, 0, em.Count())

	// 调色板里定义的自定义标签可以使用
	cfg.Palette = map[string]string{"notacolor": "#123456"}
	_, err = NewAgentEntity(em, cfg, rng, "notacolor")
	assert.NoError(t, err)
}

func TestListAgentsKeepsOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArenaConfig()
	rng := utils.NewSeededRandom(1)

	for _, team := range []string{"red", "blue", "green"} {
		_, err := NewAgentEntity(em, cfg, rng, team)
		require.NoError(t, err)
	}
	// 非方块实体以及缺少组件的实体不会出现在列表中
	em.CreateEntity()
	partial := em.CreateEntity()
	em.AddComponent(partial, &components.TeamComponent{Label: "yellow"})
	em.AddComponent(partial, &components.PositionComponent{})

	agents := ListAgents(em)
	require.Len(t, agents, 3)
	assert.Equal(t, "red", agents[0].Team.Label)
	assert.Equal(t, "blue", agents[1].Team.Label)
	assert.Equal(t, "green", agents[2].Team.Label)
}
