package systems

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/rs/zerolog/log"
)

// PhysicsSystem 处理游戏物理逻辑
// 主要负责碰撞检测（子弹与僵尸的碰撞）
type PhysicsSystem struct {
	world   *game.World
	metrics *game.Metrics
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - w: 游戏世界，用于查询和删除子弹与僵尸
//   - m: 计数指标，可为 nil
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(w *game.World, m *game.Metrics) *PhysicsSystem {
	return &PhysicsSystem{
		world:   w,
		metrics: m,
	}
}

// checkAABBCollision 检查子弹和僵尸的碰撞盒是否重叠
// 子弹碰撞盒以子弹坐标为中心，僵尸碰撞盒以左上角为原点
func checkAABBCollision(bullet components.BulletComponent, zombie components.ZombieComponent) bool {
	return bullet.Bounds().Overlaps(zombie.Bounds())
}

// Update 更新物理系统，处理碰撞检测
// 按顺序检测每颗子弹与每个存活僵尸，命中第一个僵尸后两者都被删除，
// 该子弹不再继续检测
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统暂不使用
//
// 返回:
//   - int: 本帧被击中的僵尸数量
func (ps *PhysicsSystem) Update(deltaTime float64) int {
	hits := 0
	ps.world.Bullets.Each(func(bulletID ecs.EntityID, bullet *components.BulletComponent) bool {
		ps.world.Zombies.Each(func(zombieID ecs.EntityID, zombie *components.ZombieComponent) bool {
			if !checkAABBCollision(*bullet, *zombie) {
				return true
			}

			ps.world.Bullets.DestroyEntity(bulletID)
			ps.world.Zombies.DestroyEntity(zombieID)
			ps.metrics.ZombieKilled()
			hits++

			log.Debug().
				Str("component", "PhysicsSystem").
				Uint64("bullet", uint64(bulletID)).
				Uint64("zombie", uint64(zombieID)).
				Msg("bullet hit zombie")
			return false
		})
		return true
	})
	return hits
}
