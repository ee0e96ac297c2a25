package systems

import (
	"math/rand"

	"github.com/decker502/zombiehunt/pkg/game"
)

// Simulation 按固定顺序执行一帧模拟
//
//  1. 生成僵尸
//  2. 推进僵尸，处理到达枪口
//  3. 推进子弹，删除飞出屏幕的子弹
//  4. 子弹与僵尸碰撞
//
// 删除在各步骤中只做标记，帧末统一压缩。
type Simulation struct {
	world    *game.World
	spawn    *ZombieSpawnSystem
	movement *ZombieMovementSystem
	bullets  *BulletSystem
	physics  *PhysicsSystem
}

// NewSimulation 创建模拟步骤
func NewSimulation(w *game.World, gs *game.GameState, m *game.Metrics, rng *rand.Rand) *Simulation {
	return &Simulation{
		world:    w,
		spawn:    NewZombieSpawnSystem(w, gs, m, rng),
		movement: NewZombieMovementSystem(w, gs, m),
		bullets:  NewBulletSystem(w),
		physics:  NewPhysicsSystem(w, m),
	}
}

// StepResult 一帧模拟中发生的事件
type StepResult struct {
	Spawned bool
	Reached int
	Killed  int
}

// Step 执行一帧模拟
func (s *Simulation) Step(deltaTime float64) StepResult {
	var result StepResult
	result.Spawned = s.spawn.Update(deltaTime)
	result.Reached = s.movement.Update(deltaTime)
	s.bullets.Update(deltaTime)
	result.Killed = s.physics.Update(deltaTime)
	s.world.RemoveMarkedEntities()
	return result
}
