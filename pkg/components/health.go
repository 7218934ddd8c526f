package components

// 生命值与治疗常量
const (
	// DefaultHitPoints 初始生命值，同时也是生命值上限
	DefaultHitPoints = 10
	// DefaultHeals 初始治疗次数
	DefaultHeals = 3
)

// HealthComponent 存储方块的生命值信息
//
// 不变量：
//   - 0 <= HitPoints <= MaxHitPoints
//   - HitPoints 降到 0 时 Alive 变为 false，且之后不再恢复
type HealthComponent struct {
	HitPoints    int  // 当前生命值
	MaxHitPoints int  // 生命值上限
	Alive        bool // 是否存活；阵亡的方块保留在场上，但不再移动和参与碰撞
}

// TakeDamage 扣除生命值
// 生命值最低为 0，降到 0 及以下时标记为阵亡
func (h *HealthComponent) TakeDamage(damage int) {
	if damage < 0 {
		damage = 0
	}
	h.HitPoints -= damage
	if h.HitPoints <= 0 {
		h.HitPoints = 0
		h.Alive = false
	}
}

// IsWounded 生命值未满时返回 true
func (h *HealthComponent) IsWounded() bool {
	return h.HitPoints < h.MaxHitPoints
}
