package scenes

import (
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// GameOverDrawer 绘制结束画面
type GameOverDrawer interface {
	DrawGameOver(screen *ebiten.Image)
}

// GameOverScene 显示 "You Died"，保持固定时长后结束会话
type GameOverScene struct {
	state  *game.GameState
	drawer GameOverDrawer
}

// NewGameOverScene 创建结束画面场景
func NewGameOverScene(gs *game.GameState, drawer GameOverDrawer) *GameOverScene {
	return &GameOverScene{state: gs, drawer: drawer}
}

// Update 累计结束画面的显示时间，时间到后返回 ebiten.Termination
func (s *GameOverScene) Update(deltaTime float64) error {
	if s.state.AdvanceGameOver(deltaTime) {
		log.Info().Str("component", "GameOverScene").Msg("session finished")
	}
	if s.state.Phase == game.PhaseTerminated {
		return ebiten.Termination
	}
	return nil
}

// Terminate 跳过剩余的保持时间，直接结束会话
func (s *GameOverScene) Terminate() {
	s.state.Terminate()
}

// Draw 绘制结束画面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	if s.drawer != nil {
		s.drawer.DrawGameOver(screen)
	}
}
