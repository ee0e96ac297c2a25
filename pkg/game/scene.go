package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (gameplay, game over screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	// 返回 ebiten.Termination 表示会话正常结束，其它错误表示致命错误
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}
