package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/components"
	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/ecs"
	"github.com/decker502/fightingboxes/pkg/entities"
	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// PhysicsSystem 处理方块的移动、碰撞检测与战斗/治疗结算
//
// 每帧按创建顺序处理存活的方块：先移动方块 a，再让 a 与其他所有方块逐一比较，
// 然后才轮到下一个方块移动。所有效果立即生效，后面的比较能看到前面的结果。
type PhysicsSystem struct {
	cfg    *config.ArenaConfig
	rng    utils.Random
	logger *zap.Logger
}

// PhysicsResult 一帧物理更新的统计
type PhysicsResult struct {
	DamageEvents int            // 敌对碰撞造成伤害的次数
	HealEvents   int            // 同队重叠互相治疗的次数
	Deaths       []ecs.EntityID // 本帧阵亡的方块
}

// pairKey 无序方块对
type pairKey struct {
	lo, hi ecs.EntityID
}

func makePairKey(a, b ecs.EntityID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - cfg: 竞技场配置（边界、闪光色）
//   - rng: 随机数来源，决定碰撞时哪一方受伤
//   - logger: 日志，可为 nil
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(cfg *config.ArenaConfig, rng utils.Random, logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsSystem{
		cfg:    cfg,
		rng:    rng,
		logger: logger.Named("physics"),
	}
}

// checkAABBCollision 检查两个方块的AABB（轴对齐边界框）是否重叠
// 位置为碰撞盒左上角；边缘刚好接触不算重叠
//
// 参数:
//   - pos1: 第一个方块的位置组件
//   - col1: 第一个方块的碰撞组件
//   - pos2: 第二个方块的位置组件
//   - col2: 第二个方块的碰撞组件
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true，否则返回 false
func (ps *PhysicsSystem) checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	return pos1.X < pos2.X+col2.Width &&
		pos1.X+col1.Width > pos2.X &&
		pos1.Y < pos2.Y+col2.Height &&
		pos1.Y+col1.Height > pos2.Y
}

// Update 执行一帧物理更新
//
// 参数:
//   - world: 当前一局的对战状态
//   - dt: 经过时间倍率缩放后的帧间隔（毫秒）
//
// 返回:
//   - PhysicsResult: 本帧伤害、治疗和阵亡统计
func (ps *PhysicsSystem) Update(world *game.World, dt float64) PhysicsResult {
	var result PhysicsResult

	agents := world.Agents()
	// 每对方块每帧最多结算一次
	resolved := make(map[pairKey]bool)

	for _, a := range agents {
		// 阵亡的方块原地冻结，不移动也不参与碰撞
		if !a.Alive() {
			continue
		}
		ps.moveAgent(a, dt)
		ps.interact(world, a, agents, resolved, &result)
	}

	return result
}

// moveAgent 移动方块并处理墙壁反弹
func (ps *PhysicsSystem) moveAgent(a *entities.Agent, dt float64) {
	pos := a.Position
	vel := a.Velocity
	col := a.Collision

	pos.X += dt * vel.X
	pos.Y += dt * vel.Y

	// 越过右/下边界或坐标为负时方向取反
	if pos.X+col.Width > ps.cfg.Width || pos.X < 0 {
		vel.X = -vel.X
	}
	if pos.Y+col.Height > ps.cfg.Height || pos.Y < 0 {
		vel.Y = -vel.Y
	}

	// 无论本帧是否反弹都把位置限制在边界内
	pos.X = clamp(pos.X, 0, ps.cfg.Width-col.Width)
	pos.Y = clamp(pos.Y, 0, ps.cfg.Height-col.Height)
}

// interact 让方块 a 与其他所有方块逐一比较
//
// 颜色按“每次比较”而不是“每个方块”设置：a 与某个敌人重叠时双方变成闪光色，
// 但之后 a 与任意一个未重叠的方块比较时，a 的颜色又会被恢复为队伍颜色。
func (ps *PhysicsSystem) interact(
	world *game.World,
	a *entities.Agent,
	agents []*entities.Agent,
	resolved map[pairKey]bool,
	result *PhysicsResult) {

	for _, b := range agents {
		if b.ID == a.ID {
			continue
		}
		// a 在本轮比较中阵亡，立即停止
		if !a.Alive() {
			return
		}

		if !b.Alive() || !ps.checkAABBCollision(a.Position, a.Collision, b.Position, b.Collision) {
			a.ResetColor()
			b.ResetColor()
			continue
		}

		key := makePairKey(a.ID, b.ID)

		if a.Team.Label != b.Team.Label {
			if !resolved[key] {
				resolved[key] = true
				ps.resolveCombat(a, b, result)
				world.RecordCollision(a.ID, b.ID)
			}
			a.Color.Color = ps.cfg.FlashColor
			b.Color.Color = ps.cfg.FlashColor
			continue
		}

		if !resolved[key] {
			resolved[key] = true
			applyHeal(a.Health, b.Combat)
			applyHeal(b.Health, a.Combat)
			result.HealEvents++
		}
	}
}

// resolveCombat 敌对碰撞：随机选择一方承受另一方的攻击力
func (ps *PhysicsSystem) resolveCombat(a, b *entities.Agent, result *PhysicsResult) {
	victim, attacker := b, a
	if ps.rng.Float64() < 0.5 {
		victim, attacker = a, b
	}

	victim.Health.TakeDamage(attacker.Combat.Strength)
	result.DamageEvents++

	if !victim.Alive() {
		result.Deaths = append(result.Deaths, victim.ID)
		ps.logger.Debug("agent destroyed",
			zap.Uint64("id", uint64(victim.ID)),
			zap.String("team", victim.Team.Label),
			zap.Uint64("by", uint64(attacker.ID)),
		)
	}
}

// applyHeal 队友治疗
//
// 只有目标生命值未满时才生效：目标恢复 healer.Heals 点生命（不超过上限），
// 随后 healer.Heals 减 1（最低为 0）。
func applyHeal(target *components.HealthComponent, healer *components.CombatComponent) {
	if !target.IsWounded() {
		return
	}

	target.HitPoints += healer.Heals
	if target.HitPoints > target.MaxHitPoints {
		target.HitPoints = target.MaxHitPoints
	}

	healer.Heals--
	if healer.Heals < 0 {
		healer.Heals = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
