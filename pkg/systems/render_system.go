package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	bulletColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	hudTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gameOverColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// RenderSystem 负责绘制一帧画面
//
// 绘制顺序（从下到上）：
//  1. 灰色背景
//  2. 僵尸贴图
//  3. 子弹（红色圆点）
//  4. 准星
//  5. 左上角 HUD
//
// 游戏结束时改为绘制红色结束画面。
type RenderSystem struct {
	world *game.World
	state *game.GameState

	zombieImage  *ebiten.Image
	pointerImage *ebiten.Image

	hudFont      *text.GoTextFace
	gameOverFont *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
// 僵尸和准星贴图必须已经通过资源组加载
func NewRenderSystem(w *game.World, gs *game.GameState, rm *game.ResourceManager) (*RenderSystem, error) {
	zombieImage := rm.GetImageByID(config.ZombieImageID)
	if zombieImage == nil {
		return nil, fmt.Errorf("image not loaded: %s", config.ZombieImageID)
	}
	pointerImage := rm.GetImageByID(config.GunPointerImageID)
	if pointerImage == nil {
		return nil, fmt.Errorf("image not loaded: %s", config.GunPointerImageID)
	}

	hudFont, err := rm.LoadFont(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	gameOverFont, err := rm.LoadFont(config.GameOverFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load game over font: %w", err)
	}

	return &RenderSystem{
		world:        w,
		state:        gs,
		zombieImage:  zombieImage,
		pointerImage: pointerImage,
		hudFont:      hudFont,
		gameOverFont: gameOverFont,
	}, nil
}

// Draw 绘制游戏画面
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.world.Zombies.Each(func(_ ecs.EntityID, z *components.ZombieComponent) bool {
		drawSprite(screen, s.zombieImage, z.Position.X, z.Position.Y, config.ZombieSize)
		return true
	})

	s.world.Bullets.Each(func(_ ecs.EntityID, b *components.BulletComponent) bool {
		vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), config.BulletRadius, bulletColor, true)
		return true
	})

	// 准星以枪的位置为中心
	gun := s.world.Gun.Position
	half := config.PointerSize / 2
	drawSprite(screen, s.pointerImage, gun.X-half, gun.Y-half, config.PointerSize)

	s.drawHUD(screen)
}

// DrawGameOver 绘制结束画面：红色背景，居中显示文字
func (s *RenderSystem) DrawGameOver(screen *ebiten.Image) {
	screen.Fill(gameOverColor)
	if s.gameOverFont == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(config.GameWindowWidth/2, config.GameWindowHeight/2)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, config.GameOverText, s.gameOverFont, op)
}

// drawHUD 绘制射击状态和到达计数
func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	if s.hudFont == nil {
		return
	}
	for i, line := range hudLines(s.state) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.HUDLineX, config.HUDLineY+float64(i)*config.HUDLineSpacing)
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, line, s.hudFont, op)
	}
}

// hudLines 返回 HUD 的文字内容
func hudLines(gs *game.GameState) []string {
	shooting := "Off"
	if gs.Shooting {
		shooting = "On"
	}
	return []string{
		fmt.Sprintf("Shooting: %s", shooting),
		fmt.Sprintf("Zombies Reached: %d/%d", gs.ZombiesReached, config.MaxZombiesReached),
	}
}

// drawSprite 把贴图缩放为 size×size 绘制在 (x, y)
func drawSprite(screen, img *ebiten.Image, x, y, size float64) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(w), size/float64(h))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
