package entities

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
)

// NewZombieEntity 在屏幕顶部创建僵尸实体
//
// 参数:
//   - w: 游戏世界
//   - x: 僵尸左上角的X坐标
//
// 返回:
//   - ecs.EntityID: 创建的僵尸实体ID
func NewZombieEntity(w *game.World, x float64) ecs.EntityID {
	return w.Zombies.CreateEntity(components.ZombieComponent{
		Position: components.PositionComponent{X: x, Y: 0},
	})
}
