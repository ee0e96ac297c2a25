package systems

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
)

// BulletSystem 推进子弹，飞出屏幕顶部的子弹被删除
type BulletSystem struct {
	world *game.World
}

// NewBulletSystem 创建子弹移动系统
func NewBulletSystem(w *game.World) *BulletSystem {
	return &BulletSystem{world: w}
}

// Update 每颗子弹上移固定距离，Y < 0 时标记删除
func (s *BulletSystem) Update(deltaTime float64) {
	s.world.Bullets.Each(func(id ecs.EntityID, b *components.BulletComponent) bool {
		b.Position.Y -= config.BulletSpeed
		if b.Position.Y < 0 {
			s.world.Bullets.DestroyEntity(id)
		}
		return true
	})
}
