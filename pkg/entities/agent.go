package entities

import (
	"reflect"

	"github.com/decker502/fightingboxes/pkg/components"
	"github.com/decker502/fightingboxes/pkg/ecs"
)

// Agent 聚合一个方块实体的全部组件指针
// 通过它修改字段会直接作用于 EntityManager 中的组件
type Agent struct {
	ID        ecs.EntityID
	Team      *components.TeamComponent
	Position  *components.PositionComponent
	Velocity  *components.VelocityComponent
	Collision *components.CollisionComponent
	Health    *components.HealthComponent
	Combat    *components.CombatComponent
	Color     *components.ColorComponent
}

// agentComponentTypes 方块实体必须拥有的组件
var agentComponentTypes = []reflect.Type{
	reflect.TypeOf(&components.TeamComponent{}),
	reflect.TypeOf(&components.PositionComponent{}),
	reflect.TypeOf(&components.VelocityComponent{}),
	reflect.TypeOf(&components.CollisionComponent{}),
	reflect.TypeOf(&components.HealthComponent{}),
	reflect.TypeOf(&components.CombatComponent{}),
	reflect.TypeOf(&components.ColorComponent{}),
}

// GetAgent 查询方块实体
// 任一组件缺失时返回 false
func GetAgent(em *ecs.EntityManager, id ecs.EntityID) (*Agent, bool) {
	team, ok := ecs.GetComponent[*components.TeamComponent](em, id)
	if !ok {
		return nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return nil, false
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		return nil, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return nil, false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return nil, false
	}
	combat, ok := ecs.GetComponent[*components.CombatComponent](em, id)
	if !ok {
		return nil, false
	}
	clr, ok := ecs.GetComponent[*components.ColorComponent](em, id)
	if !ok {
		return nil, false
	}

	return &Agent{
		ID:        id,
		Team:      team,
		Position:  pos,
		Velocity:  vel,
		Collision: col,
		Health:    health,
		Combat:    combat,
		Color:     clr,
	}, true
}

// ListAgents 按创建顺序返回所有方块
func ListAgents(em *ecs.EntityManager) []*Agent {
	ids := em.GetEntitiesWith(agentComponentTypes...)
	agents := make([]*Agent, 0, len(ids))
	for _, id := range ids {
		if agent, ok := GetAgent(em, id); ok {
			agents = append(agents, agent)
		}
	}
	return agents
}

// Alive 方块是否存活
func (a *Agent) Alive() bool {
	return a.Health.Alive
}

// ResetColor 恢复队伍颜色
func (a *Agent) ResetColor() {
	a.Color.Color = a.Team.Label
}
