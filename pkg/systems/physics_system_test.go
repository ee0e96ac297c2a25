package systems

import (
	"testing"

	"github.com/decker502/zombiehunt/pkg/components"
	"github.com/decker502/zombiehunt/pkg/ecs"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/stretchr/testify/assert"
)

// TestCheckAABBCollision 测试子弹与僵尸碰撞盒的重叠判定
func TestCheckAABBCollision(t *testing.T) {
	zombie := components.ZombieComponent{Position: components.PositionComponent{X: 0, Y: 0}}

	tests := []struct {
		name  string
		x, y  float64
		want  bool
		descr string
	}{
		{name: "子弹在僵尸内部", x: 50, y: 50, want: true, descr: "子弹 (50,50) 应命中 (0,0,100,100) 的僵尸"},
		{name: "子弹在僵尸右侧", x: 200, y: 50, want: false, descr: "子弹 (200,50) 不应命中"},
		{name: "部分重叠 - 右边", x: 104, y: 50, want: true, descr: "子弹碰撞盒左边缘 99 与僵尸重叠"},
		{name: "边界刚好接触 - 右边", x: 105, y: 50, want: false, descr: "子弹碰撞盒左边缘 100 只接触僵尸右边缘"},
		{name: "边界刚好接触 - 下边", x: 50, y: 105, want: false, descr: "子弹碰撞盒上边缘 100 只接触僵尸下边缘"},
		{name: "边界刚好接触 - 左边", x: -5, y: 50, want: false, descr: "子弹碰撞盒右边缘 0 只接触僵尸左边缘"},
		{name: "部分重叠 - 上边", x: 50, y: -4, want: true, descr: "子弹碰撞盒下边缘 1 与僵尸重叠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullet := components.BulletComponent{Position: components.PositionComponent{X: tt.x, Y: tt.y}}
			assert.Equal(t, tt.want, checkAABBCollision(bullet, zombie), tt.descr)
		})
	}
}

func TestPhysicsSystem_HitRemovesBoth(t *testing.T) {
	w := game.NewWorld()
	addZombie(w, 0, 0)
	addBullet(w, 50, 50)
	addBullet(w, 200, 50)

	ps := NewPhysicsSystem(w, nil)
	assert.Equal(t, 1, ps.Update(0))

	w.RemoveMarkedEntities()
	assert.Equal(t, 0, w.Zombies.Len())
	assert.Equal(t, 1, w.Bullets.Len())
}

// TestPhysicsSystem_FirstMatchOnly 一颗子弹只消灭按顺序第一个重叠的僵尸
func TestPhysicsSystem_FirstMatchOnly(t *testing.T) {
	w := game.NewWorld()
	first := addZombie(w, 0, 0)
	second := addZombie(w, 20, 20)
	addBullet(w, 50, 50)

	ps := NewPhysicsSystem(w, nil)
	assert.Equal(t, 1, ps.Update(0))

	_, firstAlive := w.Zombies.GetComponent(first)
	_, secondAlive := w.Zombies.GetComponent(second)
	assert.False(t, firstAlive)
	assert.True(t, secondAlive)
	assert.Equal(t, 0, w.Bullets.Len())
}

// TestPhysicsSystem_ZombieHitOnce 两颗子弹同时命中同一僵尸时，第二颗子弹保留
func TestPhysicsSystem_ZombieHitOnce(t *testing.T) {
	w := game.NewWorld()
	addZombie(w, 0, 0)
	firstBullet := addBullet(w, 40, 40)
	secondBullet := addBullet(w, 60, 60)

	ps := NewPhysicsSystem(w, nil)
	assert.Equal(t, 1, ps.Update(0))

	_, firstAlive := w.Bullets.GetComponent(firstBullet)
	_, secondAlive := w.Bullets.GetComponent(secondBullet)
	assert.False(t, firstAlive)
	assert.True(t, secondAlive)
}

// TestPhysicsSystem_OrderPreserved 删除后剩余实体保持原有顺序
func TestPhysicsSystem_OrderPreserved(t *testing.T) {
	w := game.NewWorld()
	z1 := addZombie(w, 0, 0)
	addZombie(w, 300, 0)
	z3 := addZombie(w, 600, 0)
	addBullet(w, 350, 50)

	NewPhysicsSystem(w, nil).Update(0)
	w.RemoveMarkedEntities()

	assert.Equal(t, []ecs.EntityID{z1, z3}, zombieIDs(w))
}
