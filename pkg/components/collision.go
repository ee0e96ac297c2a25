package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于物理系统检测实体之间的碰撞（如子弹与僵尸）
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒左上角相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒左上角相对于实体位置的Y偏移量（像素），正值向下偏移
}

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bounds 返回碰撞盒在给定实体位置处的矩形
func (c CollisionComponent) Bounds(pos PositionComponent) Rect {
	return Rect{
		X:      pos.X + c.OffsetX,
		Y:      pos.Y + c.OffsetY,
		Width:  c.Width,
		Height: c.Height,
	}
}

// Overlaps 检查两个矩形是否重叠
// 仅边缘接触不算重叠（重叠面积必须大于零）
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height &&
		o.Y < r.Y+r.Height
}
