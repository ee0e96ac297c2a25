package systems

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/rs/zerolog/log"
)

// ZombieMovementSystem 推进僵尸并处理到达枪口
type ZombieMovementSystem struct {
	world   *game.World
	state   *game.GameState
	metrics *game.Metrics
}

// NewZombieMovementSystem 创建僵尸移动系统
func NewZombieMovementSystem(w *game.World, gs *game.GameState, m *game.Metrics) *ZombieMovementSystem {
	return &ZombieMovementSystem{world: w, state: gs, metrics: m}
}

// Update 每个僵尸下移固定距离
// 到达枪口高度的僵尸计数一次并标记删除，本帧不再参与碰撞
// 返回本帧到达的僵尸数量
func (s *ZombieMovementSystem) Update(deltaTime float64) int {
	reached := 0
	s.world.Zombies.Each(func(id ecs.EntityID, z *components.ZombieComponent) bool {
		z.Position.Y += config.ZombieSpeed
		if z.Position.Y < config.GunY {
			return true
		}

		s.world.Zombies.DestroyEntity(id)
		if s.state.RecordZombieReached() {
			s.metrics.ZombieReached()
		}
		reached++

		log.Debug().
			Str("component", "ZombieMovementSystem").
			Uint64("id", uint64(id)).
			Int("reached", s.state.ZombiesReached).
			Msg("zombie reached the gun")
		return true
	})
	return reached
}
