package game

import "github.com/decker502/zombiehunt/pkg/config"

// Phase 游戏会话阶段
//
// 状态迁移：
//   - Running → GameOver（到达枪口的僵尸数达到上限）
//   - GameOver → Terminated（结束画面保持时间结束）
//   - Running/GameOver → Terminated（用户退出）
//
// 没有回到 Running 的迁移。
type Phase int

const (
	// PhaseRunning 游戏进行中
	PhaseRunning Phase = iota
	// PhaseGameOver 显示结束画面
	PhaseGameOver
	// PhaseTerminated 会话结束，循环应停止
	PhaseTerminated
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// GameState 存储一局游戏的状态
// 由游戏场景持有并传给各个系统，不使用全局单例
type GameState struct {
	Phase Phase

	// Shooting 当前是否处于射击手势
	Shooting bool

	// ZombiesReached 到达枪口的僵尸数量，只增不减
	ZombiesReached int

	// gameOverElapsed 结束画面已显示的时间（秒）
	gameOverElapsed float64
}

// NewGameState 创建初始游戏状态
func NewGameState() *GameState {
	return &GameState{Phase: PhaseRunning}
}

// IsRunning 是否处于游戏进行阶段
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// RecordZombieReached 记录一个僵尸到达枪口
// 计数达到上限时进入 GameOver 阶段；达到上限后不再增加
// 返回 true 表示计数增加了
func (gs *GameState) RecordZombieReached() bool {
	if gs.ZombiesReached >= config.MaxZombiesReached {
		return false
	}
	gs.ZombiesReached++
	if gs.ZombiesReached >= config.MaxZombiesReached && gs.Phase == PhaseRunning {
		gs.Phase = PhaseGameOver
		gs.gameOverElapsed = 0
	}
	return true
}

// SetShooting 更新射击状态，返回本次是否为 关→开 的边沿
// 持续保持射击手势不会重复触发
func (gs *GameState) SetShooting(on bool) (fired bool) {
	fired = on && !gs.Shooting
	gs.Shooting = on
	return fired
}

// AdvanceGameOver 推进结束画面计时
// 保持时间结束后进入 Terminated 阶段，返回 true 表示本次调用触发了迁移
func (gs *GameState) AdvanceGameOver(deltaTime float64) bool {
	if gs.Phase != PhaseGameOver {
		return false
	}
	gs.gameOverElapsed += deltaTime
	if gs.gameOverElapsed >= config.GameOverHoldSeconds {
		gs.Phase = PhaseTerminated
		return true
	}
	return false
}

// Terminate 立即结束会话（用户退出或摄像头失败）
func (gs *GameState) Terminate() {
	gs.Phase = PhaseTerminated
}
