package components

import "github.com/decker502/zombiehunt/pkg/config"

// BulletComponent 子弹实体
// 位置为子弹中心，匀速向上移动
type BulletComponent struct {
	Position PositionComponent
}

// BulletCollision 子弹碰撞盒：以子弹坐标为中心的小正方形
var BulletCollision = CollisionComponent{
	Width:   config.BulletHitboxSize,
	Height:  config.BulletHitboxSize,
	OffsetX: -config.BulletHitboxSize / 2,
	OffsetY: -config.BulletHitboxSize / 2,
}

// Bounds 返回子弹当前的碰撞矩形
func (b BulletComponent) Bounds() Rect {
	return BulletCollision.Bounds(b.Position)
}
