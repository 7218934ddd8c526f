package components

// CollisionComponent 定义方块的碰撞边界框
// 边界框以 PositionComponent 为左上角，所有方块尺寸相同
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
