package systems

import (
	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
)

// fakeSoundPlayer 记录播放过的音效ID
type fakeSoundPlayer struct {
	played []string
}

func (f *fakeSoundPlayer) PlaySound(soundID string) bool {
	f.played = append(f.played, soundID)
	return true
}

// addZombie 在指定位置创建僵尸（左上角坐标）
func addZombie(w *game.World, x, y float64) ecs.EntityID {
	return w.Zombies.CreateEntity(components.ZombieComponent{
		Position: components.PositionComponent{X: x, Y: y},
	})
}

// addBullet 在指定位置创建子弹（中心坐标）
func addBullet(w *game.World, x, y float64) ecs.EntityID {
	return w.Bullets.CreateEntity(components.BulletComponent{
		Position: components.PositionComponent{X: x, Y: y},
	})
}

// zombieIDs 按顺序返回存活僵尸的ID
func zombieIDs(w *game.World) []ecs.EntityID {
	var ids []ecs.EntityID
	w.Zombies.Each(func(id ecs.EntityID, _ *components.ZombieComponent) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// zombieYs 按顺序返回存活僵尸的Y坐标
func zombieYs(w *game.World) []float64 {
	var ys []float64
	w.Zombies.Each(func(_ ecs.EntityID, z *components.ZombieComponent) bool {
		ys = append(ys, z.Position.Y)
		return true
	})
	return ys
}

// bulletYs 按顺序返回存活子弹的Y坐标
func bulletYs(w *game.World) []float64 {
	var ys []float64
	w.Bullets.Each(func(_ ecs.EntityID, b *components.BulletComponent) bool {
		ys = append(ys, b.Position.Y)
		return true
	})
	return ys
}
