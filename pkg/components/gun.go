package components

// GunComponent 玩家的枪
// X 由手势指针驱动（水平镜像），Y 固定在屏幕底部附近
type GunComponent struct {
	Position PositionComponent
}
