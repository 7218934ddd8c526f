package components

// PositionComponent 存储实体左上角在竞技场中的坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的移动方向与速度（像素/毫秒）
// 碰到墙壁时对应分量取反
type VelocityComponent struct {
	X float64
	Y float64
}
