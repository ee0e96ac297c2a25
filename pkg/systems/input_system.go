package systems

import (
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/entities"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/decker502/zombiehunt/pkg/gesture"
	"github.com/rs/zerolog/log"
)

// InputSystem 把手势识别结果应用到游戏状态
//
// 每帧处理顺序：
//  1. 根据手势更新射击状态，关→开 的边沿在当前枪口位置发射一颗子弹
//  2. 再根据指针位置移动枪（水平镜像）
//
// 没有检测到手时射击状态和枪的位置都保持不变。
type InputSystem struct {
	world   *game.World
	state   *game.GameState
	sound   game.SoundPlayer
	metrics *game.Metrics
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - w: 游戏世界
//   - gs: 游戏状态
//   - sound: 音效播放器，可为 nil（静音）
//   - m: 计数指标，可为 nil
func NewInputSystem(w *game.World, gs *game.GameState, sound game.SoundPlayer, m *game.Metrics) *InputSystem {
	return &InputSystem{
		world:   w,
		state:   gs,
		sound:   sound,
		metrics: m,
	}
}

// Apply 应用一帧的手势识别结果
// 返回 true 表示本帧开火
func (s *InputSystem) Apply(reading gesture.Reading) bool {
	if !reading.HandDetected {
		return false
	}

	wasShooting := s.state.Shooting
	fired := s.state.SetShooting(reading.Action == gesture.ActionShoot)
	if fired {
		s.fire()
		log.Info().Str("component", "InputSystem").Msg("Shooting started!")
	} else if wasShooting && !s.state.Shooting {
		log.Info().Str("component", "InputSystem").Msg("Shooting stopped!")
	}

	// 指针与枪水平镜像
	s.world.Gun.Position.X = config.GameWindowWidth - reading.PointerX
	return fired
}

// fire 在枪口上方生成子弹并播放音效
func (s *InputSystem) fire() {
	gun := s.world.Gun.Position
	entities.NewBulletEntity(s.world, gun.X, gun.Y)
	s.metrics.ShotFired()

	if s.sound != nil {
		s.sound.PlaySound(config.ShootSoundID)
	}
}
