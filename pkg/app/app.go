// Package app 提供游戏应用的核心包装器
//
// App 实现 ebiten.Game 接口，负责窗口级的按键（F11 全屏、Esc 退出），
// 并把每个 tick 转发给场景管理器。
package app

import (
	"image/color"

	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建游戏应用
// 场景管理器中应已切换到初始场景
func NewApp(sm *game.SceneManager) *App {
	return &App{sceneManager: sm}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，返回 ebiten.Termination 时游戏循环结束
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return a.quit()
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 让窗口管理器先处理退出全屏
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Debug().Str("component", "App").Msg("exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	return a.sceneManager.Update(DeltaTime())
}

// DeltaTime 返回每个 tick 对应的时间（秒）
func DeltaTime() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// quit 把当前会话标记为结束并让游戏循环退出
func (a *App) quit() error {
	log.Info().Str("component", "App").Msg("escape pressed, quitting")
	a.sceneManager.Terminate()
	return ebiten.Termination
}
