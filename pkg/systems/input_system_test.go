package systems

import (
	"testing"

	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/decker502/zombiehunt/pkg/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shootAt(pointerX float64) gesture.Reading {
	return gesture.Reading{HandDetected: true, Action: gesture.ActionShoot, PointerX: pointerX}
}

func stopAt(pointerX float64) gesture.Reading {
	return gesture.Reading{HandDetected: true, Action: gesture.ActionStop, PointerX: pointerX}
}

// TestInputSystem_NoHand 没有检测到手时状态保持不变
func TestInputSystem_NoHand(t *testing.T) {
	w := game.NewWorld()
	gs := game.NewGameState()
	sound := &fakeSoundPlayer{}
	s := NewInputSystem(w, gs, sound, nil)

	s.Apply(shootAt(100))
	gunX := w.Gun.Position.X

	assert.False(t, s.Apply(gesture.Reading{HandDetected: false}))
	assert.True(t, gs.Shooting)
	assert.Equal(t, gunX, w.Gun.Position.X)
	assert.Equal(t, 1, w.Bullets.Len())
}

// TestInputSystem_FireOnEdge 保持射击手势只开火一次，松开后再次握拳再开火
func TestInputSystem_FireOnEdge(t *testing.T) {
	w := game.NewWorld()
	gs := game.NewGameState()
	sound := &fakeSoundPlayer{}
	s := NewInputSystem(w, gs, sound, nil)

	readings := []struct {
		reading  gesture.Reading
		wantFire bool
	}{
		{stopAt(400), false},
		{shootAt(400), true},
		{shootAt(400), false},
		{shootAt(400), false},
		{stopAt(400), false},
		{shootAt(400), true},
	}

	for i, step := range readings {
		assert.Equal(t, step.wantFire, s.Apply(step.reading), "frame %d", i)
	}

	assert.Equal(t, 2, w.Bullets.Len())
	assert.Equal(t, []string{config.ShootSoundID, config.ShootSoundID}, sound.played)
}

// TestInputSystem_BulletUsesPreviousGunPosition 子弹在移动枪之前的位置生成
func TestInputSystem_BulletUsesPreviousGunPosition(t *testing.T) {
	w := game.NewWorld()
	gs := game.NewGameState()
	s := NewInputSystem(w, gs, nil, nil)

	require.True(t, s.Apply(shootAt(100)))

	var bullet components.BulletComponent
	w.Bullets.Each(func(_ ecs.EntityID, b *components.BulletComponent) bool {
		bullet = *b
		return false
	})
	assert.Equal(t, float64(config.GunStartX), bullet.Position.X)
	assert.Equal(t, config.GunY+config.BulletSpawnOffsetY, bullet.Position.Y)

	// 枪随后移动到镜像位置
	assert.Equal(t, 700.0, w.Gun.Position.X)
}

func TestInputSystem_MirrorsPointer(t *testing.T) {
	tests := []struct {
		pointerX float64
		wantGunX float64
	}{
		{pointerX: 0, wantGunX: 800},
		{pointerX: 400, wantGunX: 400},
		{pointerX: 770, wantGunX: 30},
	}

	for _, tt := range tests {
		w := game.NewWorld()
		s := NewInputSystem(w, game.NewGameState(), nil, nil)
		s.Apply(stopAt(tt.pointerX))
		assert.Equal(t, tt.wantGunX, w.Gun.Position.X, "pointer %.0f", tt.pointerX)
		assert.Equal(t, float64(config.GunY), w.Gun.Position.Y)
	}
}
