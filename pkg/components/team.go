package components

// TeamComponent 标识方块所属队伍
// Label 即队伍颜色名（如 "red"），创建后不可修改
type TeamComponent struct {
	Label string
}
