package entities

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
)

// NewBulletEntity 在枪口上方创建子弹实体
// 子弹从枪的位置向上偏移生成，之后以恒定速度向上移动
//
// 参数:
//   - w: 游戏世界
//   - gunX, gunY: 开火时枪的位置
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
func NewBulletEntity(w *game.World, gunX, gunY float64) ecs.EntityID {
	return w.Bullets.CreateEntity(components.BulletComponent{
		Position: components.PositionComponent{
			X: gunX,
			Y: gunY + config.BulletSpawnOffsetY,
		},
	})
}
