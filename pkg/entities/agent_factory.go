package entities

import (
	"fmt"
	"math"

	"github.com/decker502/fightingboxes/pkg/components"
	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/ecs"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// NewAgentEntity 创建一个方块实体
//
// 出生规则：
//   - 位置在 [ObjectSize, 边长-ObjectSize) 内均匀随机
//   - 每个轴的速度在 [MinSpeed, MaxSpeed) 内均匀随机，初始方向为右下
//   - 攻击力取 floor(uniform(1,3))，结果为 1 或 2
//   - 生命值 10，治疗量 3，存活
//
// 参数:
//   - em: 实体管理器
//   - cfg: 竞技场配置
//   - rng: 随机数来源
//   - team: 队伍标签（颜色名）
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败时返回 0
//   - error: 参数无效或队伍标签无法解析为颜色时返回错误
func NewAgentEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, rng utils.Random, team string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("arena config cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}
	if team == "" {
		return 0, fmt.Errorf("team label cannot be empty")
	}
	if _, err := utils.NewPalette(cfg.Palette).Resolve(team); err != nil {
		return 0, fmt.Errorf("unknown team color: %w", err)
	}

	size := cfg.ObjectSize

	// 取值顺序固定：方向 x/y、位置 x/y、攻击力
	dirX := utils.RandomInRange(rng, cfg.MinSpeed, cfg.MaxSpeed)
	dirY := utils.RandomInRange(rng, cfg.MinSpeed, cfg.MaxSpeed)
	posX := utils.RandomInRange(rng, size, cfg.Width-size)
	posY := utils.RandomInRange(rng, size, cfg.Height-size)
	strength := int(math.Floor(utils.RandomInRange(rng, 1, 3)))

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TeamComponent{Label: team})
	em.AddComponent(entityID, &components.PositionComponent{X: posX, Y: posY})
	em.AddComponent(entityID, &components.VelocityComponent{X: dirX, Y: dirY})
	em.AddComponent(entityID, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(entityID, &components.HealthComponent{
		HitPoints:    components.DefaultHitPoints,
		MaxHitPoints: components.DefaultHitPoints,
		Alive:        true,
	})
	em.AddComponent(entityID, &components.CombatComponent{
		Strength: strength,
		Heals:    components.DefaultHeals,
	})
	em.AddComponent(entityID, &components.ColorComponent{Color: team})

	return entityID, nil
}
