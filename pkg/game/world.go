package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/ecs"
	"github.com/decker502/fightingboxes/pkg/entities"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// CollisionPair 本帧发生碰撞的一对敌对方块
type CollisionPair struct {
	A ecs.EntityID
	B ecs.EntityID
}

// World 一局对战的全部状态
//
// 方块保存在 EntityManager 中，遍历顺序即创建顺序。
// World 在每局开始时创建，整局结束后被新的 World 替换。
type World struct {
	// RoundID 本局唯一标识，仅用于日志
	RoundID uuid.UUID

	// EntityManager 方块实体
	EntityManager *ecs.EntityManager

	// Collisions 本帧的碰撞记录，每帧开始时清空
	Collisions []CollisionPair

	// Input 当前按住的按键
	Input *InputState
}

// NewWorld 创建新的一局
//
// 按 teamSize 轮、每轮按队伍顺序各创建一个方块。
//
// 参数：
//   - cfg: 竞技场配置
//   - rng: 随机数来源
//
// 返回：
//   - *World: 新的对战状态
//   - error: 创建方块失败时返回错误
func NewWorld(cfg *config.ArenaConfig, rng utils.Random) (*World, error) {
	return NewWorldFrom(cfg, rng, 1)
}

// NewWorldFrom 与 NewWorld 相同，但方块 ID 从 firstID 开始分配
// 用于重开一局时延续上一局的 ID 序列
func NewWorldFrom(cfg *config.ArenaConfig, rng utils.Random, firstID ecs.EntityID) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("arena config cannot be nil")
	}

	em := ecs.NewEntityManagerFrom(firstID)
	for i := 0; i < cfg.TeamSize; i++ {
		for _, team := range cfg.Teams {
			if _, err := entities.NewAgentEntity(em, cfg, rng, team); err != nil {
				return nil, fmt.Errorf("failed to create agent for team %s: %w", team, err)
			}
		}
	}

	return &World{
		RoundID:       uuid.New(),
		EntityManager: em,
		Collisions:    make([]CollisionPair, 0),
		Input:         NewInputState(),
	}, nil
}

// Agents 按创建顺序返回所有方块
func (w *World) Agents() []*entities.Agent {
	return entities.ListAgents(w.EntityManager)
}

// ResetFrame 清空本帧碰撞记录
func (w *World) ResetFrame() {
	w.Collisions = w.Collisions[:0]
}

// RecordCollision 记录一次敌对碰撞
func (w *World) RecordCollision(a, b ecs.EntityID) {
	w.Collisions = append(w.Collisions, CollisionPair{A: a, B: b})
}

// TeamsAlive 返回仍有存活方块的队伍，按首次出现的顺序排列
func (w *World) TeamsAlive() []string {
	teams := make([]string, 0)
	seen := make(map[string]bool)
	for _, agent := range w.Agents() {
		if !agent.Alive() || seen[agent.Team.Label] {
			continue
		}
		seen[agent.Team.Label] = true
		teams = append(teams, agent.Team.Label)
	}
	return teams
}

// ecsFirstID 返回新一局的起始实体ID
func ecsFirstID(previous *World) ecs.EntityID {
	if previous == nil || previous.EntityManager == nil {
		return 1
	}
	return previous.EntityManager.NextID()
}
