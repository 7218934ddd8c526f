package components

// ColorComponent 方块当前的显示颜色
//
// 正常情况下等于队伍颜色；在与敌方碰撞的那次比较中被设为闪光色，
// 之后任何一次未碰撞的比较都会把它重置回队伍颜色。
type ColorComponent struct {
	Color string
}
