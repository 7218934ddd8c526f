package components

// CombatComponent 存储方块的战斗属性
type CombatComponent struct {
	// Strength 攻击力，创建时确定（1 或 2），作为对敌方造成的伤害
	Strength int

	// Heals 剩余治疗量
	// 每次为队友治疗时，队友恢复 Heals 点生命，随后 Heals 减 1（最低为 0）
	Heals int
}
