package systems

import (
	"math/rand"

	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/entities"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/rs/zerolog/log"
)

// ZombieSpawnSystem 每帧最多生成一个僵尸
// 生成条件：存活僵尸少于上限，且到达枪口的僵尸少于上限
type ZombieSpawnSystem struct {
	world   *game.World
	state   *game.GameState
	metrics *game.Metrics
	rng     *rand.Rand
}

// NewZombieSpawnSystem 创建僵尸生成系统
//
// 参数:
//   - w: 游戏世界
//   - gs: 游戏状态（读取到达计数）
//   - m: 计数指标，可为 nil
//   - rng: 随机数源，测试时可传入固定种子
func NewZombieSpawnSystem(w *game.World, gs *game.GameState, m *game.Metrics, rng *rand.Rand) *ZombieSpawnSystem {
	return &ZombieSpawnSystem{
		world:   w,
		state:   gs,
		metrics: m,
		rng:     rng,
	}
}

// Update 检查生成条件并生成僵尸
// 返回 true 表示本帧生成了僵尸
func (s *ZombieSpawnSystem) Update(deltaTime float64) bool {
	if s.world.Zombies.Len() >= config.MaxLiveZombies {
		return false
	}
	if s.state.ZombiesReached >= config.MaxZombiesReached {
		return false
	}

	// X 取值范围 [0, 屏幕宽度-僵尸宽度]，包含两端
	x := float64(s.rng.Intn(config.GameWindowWidth - config.ZombieSize + 1))
	id := entities.NewZombieEntity(s.world, x)
	s.metrics.ZombieSpawned()

	log.Debug().Str("component", "ZombieSpawnSystem").Uint64("id", uint64(id)).Float64("x", x).Msg("zombie spawned")
	return true
}
