package components

import "github.com/decker502/zombiehunt/pkg/config"

// ZombieComponent 僵尸实体
// 位置为贴图左上角，从屏幕顶部匀速向下移动
type ZombieComponent struct {
	Position PositionComponent
}

// ZombieCollision 僵尸碰撞盒：以左上角为原点的固定尺寸正方形
var ZombieCollision = CollisionComponent{
	Width:  config.ZombieSize,
	Height: config.ZombieSize,
}

// Bounds 返回僵尸当前的碰撞矩形
func (z ZombieComponent) Bounds() Rect {
	return ZombieCollision.Bounds(z.Position)
}
