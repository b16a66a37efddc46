package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs/component"
)

func TestPhysicsWorldContacts(t *testing.T) {
	enemy := component.Collider{Radius: 2, HalfHeight: 1.5, Layer: component.LayerEnemy}
	bullet := component.Collider{Radius: 0.5, HalfHeight: 0.5, Layer: component.LayerBullet}
	player := component.Collider{Radius: 1.5, HalfHeight: 1, Layer: component.LayerPlayer}
	forward := mgl64.Vec3{0, 0, -1}

	cases := []struct {
		name     string
		a, b     component.Collider
		posA     mgl64.Vec3
		posB     mgl64.Vec3
		contacts int
	}{
		{"bullet_enemy_overlap", bullet, enemy, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{}, 1},
		{"bullet_enemy_height_miss", bullet, enemy, mgl64.Vec3{0, 5, 1}, mgl64.Vec3{}, 0},
		{"bullet_enemy_apart", bullet, enemy, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{}, 0},
		{"enemy_player_overlap", enemy, player, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{}, 1},
		{"bullet_player_ignored", bullet, player, mgl64.Vec3{}, mgl64.Vec3{}, 0},
		{"enemy_enemy_ignored", enemy, enemy, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pw := NewPhysicsWorld()
			a, b := Entity(1), Entity(2)
			ca, cb := c.a, c.b
			pw.Sync(a, c.posA, forward, &ca)
			pw.Sync(b, c.posB, forward, &cb)

			got := pw.Step(1.0 / 60)
			if len(got) != c.contacts {
				t.Fatalf("expected %d contacts, got %d (%v)", c.contacts, len(got), got)
			}
			if c.contacts == 0 {
				return
			}
			pair := map[Entity]component.CollisionLayer{got[0].A: got[0].LayerA, got[0].B: got[0].LayerB}
			if pair[a] != ca.Layer || pair[b] != cb.Layer {
				t.Fatalf("unexpected contact %+v", got[0])
			}
		})
	}
}

func TestPhysicsWorldRemoveAndPrune(t *testing.T) {
	pw := NewPhysicsWorld()
	c := component.Collider{Radius: 1, HalfHeight: 1, Layer: component.LayerEnemy}
	for i := 1; i <= 3; i++ {
		pw.Sync(Entity(i), mgl64.Vec3{float64(i) * 10}, mgl64.Vec3{0, 0, -1}, &c)
	}
	if pw.Len() != 3 {
		t.Fatalf("expected 3 bodies, got %d", pw.Len())
	}

	pw.Remove(Entity(2))
	pw.Remove(Entity(2))
	if pw.Len() != 2 {
		t.Fatalf("expected 2 bodies after remove, got %d", pw.Len())
	}

	pw.Prune(func(e Entity) bool { return e == Entity(1) })
	if pw.Len() != 1 {
		t.Fatalf("expected 1 body after prune, got %d", pw.Len())
	}

	// Zero radius colliders are not tracked.
	pw.Sync(Entity(9), mgl64.Vec3{}, mgl64.Vec3{}, &component.Collider{Layer: component.LayerBullet})
	if pw.Len() != 1 {
		t.Fatalf("expected zero radius collider to be skipped, got %d bodies", pw.Len())
	}
}

func TestDestroyEntityRemovesBody(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	e := CreateEntity(w)
	pw.Sync(e, mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, &component.Collider{Radius: 1, Layer: component.LayerPlayer})
	DestroyEntity(w, e)
	if pw.Len() != 0 {
		t.Fatalf("expected body removed with entity, got %d", pw.Len())
	}
}
