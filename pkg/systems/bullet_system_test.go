package systems

import (
	"testing"

	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestBulletSystem_Update(t *testing.T) {
	w := game.NewWorld()
	addBullet(w, 400, 520)
	addBullet(w, 400, 10) // 移动到 Y=0，仍保留
	addBullet(w, 400, 5)  // 移动到 Y=-5，被删除

	s := NewBulletSystem(w)
	s.Update(0)
	w.RemoveMarkedEntities()

	assert.Equal(t, []float64{510, 0}, bulletYs(w))

	s.Update(0)
	w.RemoveMarkedEntities()
	assert.Equal(t, []float64{500}, bulletYs(w))
}

// TestBulletSystem_TravelsUntilOffScreen 子弹每帧上移10，直到 Y<0 被删除
func TestBulletSystem_TravelsUntilOffScreen(t *testing.T) {
	w := game.NewWorld()
	addBullet(w, 400, 520)
	s := NewBulletSystem(w)

	frames := 0
	for w.Bullets.Len() > 0 {
		s.Update(0)
		w.RemoveMarkedEntities()
		frames++
		if frames > 100 {
			t.Fatal("bullet never left the screen")
		}
	}
	// 520 → 0 需要 52 帧，第 53 帧变为 -10 被删除
	assert.Equal(t, 53, frames)
}
