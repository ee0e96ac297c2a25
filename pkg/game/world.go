package game

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/ecs"
)

// World 一局游戏的全部实体
// 只由每帧的模拟步骤修改
type World struct {
	Zombies *ecs.EntityManager[components.ZombieComponent]
	Bullets *ecs.EntityManager[components.BulletComponent]
	Gun     components.GunComponent
}

// NewWorld 创建空世界，枪位于屏幕底部中央
func NewWorld() *World {
	return &World{
		Zombies: ecs.NewEntityManager[components.ZombieComponent](),
		Bullets: ecs.NewEntityManager[components.BulletComponent](),
		Gun: components.GunComponent{
			Position: components.PositionComponent{
				X: config.GunStartX,
				Y: config.GunY,
			},
		},
	}
}

// RemoveMarkedEntities 清理所有标记删除的僵尸和子弹
func (w *World) RemoveMarkedEntities() {
	w.Zombies.RemoveMarkedEntities()
	w.Bullets.RemoveMarkedEntities()
}
