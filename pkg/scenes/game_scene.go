package scenes

import (
	"fmt"
	"math/rand"

	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/decker502/zombiehunt/pkg/gesture"
	"github.com/decker502/zombiehunt/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// GestureSource 每帧提供一次手势识别结果
// gesture.Recognizer 实现了该接口
type GestureSource interface {
	Next() (gesture.Reading, error)
}

// GameScene represents the main gameplay screen.
// 每帧依次执行：读取手势 → 应用输入 → 模拟一步 → 检查游戏结束
type GameScene struct {
	sceneManager *game.SceneManager
	gestures     GestureSource

	world *game.World
	state *game.GameState

	inputSystem  *systems.InputSystem
	simulation   *systems.Simulation
	renderSystem *systems.RenderSystem
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - sm: 场景管理器，游戏结束时用于切换到结束画面
//   - rm: 资源管理器，贴图和字体需已加载
//   - gestures: 手势来源
//   - sound: 音效播放器，可为 nil
//   - metrics: 计数指标，可为 nil
//   - rng: 僵尸生成使用的随机数源
func NewGameScene(
	sm *game.SceneManager,
	rm *game.ResourceManager,
	gestures GestureSource,
	sound game.SoundPlayer,
	metrics *game.Metrics,
	rng *rand.Rand,
) (*GameScene, error) {
	world := game.NewWorld()
	state := game.NewGameState()

	renderSystem, err := systems.NewRenderSystem(world, state, rm)
	if err != nil {
		return nil, fmt.Errorf("failed to create render system: %w", err)
	}

	return &GameScene{
		sceneManager: sm,
		gestures:     gestures,
		world:        world,
		state:        state,
		inputSystem:  systems.NewInputSystem(world, state, sound, metrics),
		simulation:   systems.NewSimulation(world, state, metrics, rng),
		renderSystem: renderSystem,
	}, nil
}

// State 返回本局游戏状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Update 执行一帧游戏逻辑
// 摄像头读取失败时结束会话并返回 ebiten.Termination
func (s *GameScene) Update(deltaTime float64) error {
	if s.state.Phase == game.PhaseTerminated {
		return ebiten.Termination
	}

	reading, err := s.gestures.Next()
	if err != nil {
		log.Error().Str("component", "GameScene").Err(err).Msg("failed to read gesture, stopping")
		s.state.Terminate()
		return ebiten.Termination
	}

	s.inputSystem.Apply(reading)
	s.simulation.Step(deltaTime)

	if s.state.Phase == game.PhaseGameOver {
		log.Info().
			Str("component", "GameScene").
			Int("reached", s.state.ZombiesReached).
			Msg("game over")
		s.sceneManager.SwitchTo(NewGameOverScene(s.state, s.renderSystem))
	}
	return nil
}

// Terminate 结束本局会话（用户退出）
func (s *GameScene) Terminate() {
	s.state.Terminate()
}

// Draw 绘制游戏画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}
