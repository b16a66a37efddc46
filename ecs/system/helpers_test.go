package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func testConfig() *prefabs.Config {
	return &prefabs.Config{
		Rail: prefabs.RailSpec{
			Followers:    map[string]prefabs.FollowerSpec{component.FollowerRail: {Speed: 20}},
			CameraOffset: prefabs.Vec3Spec{Z: 15},
		},
		Player: prefabs.PlayerSpec{
			MaxSpeed:     30,
			RotSpeed:     3,
			Acceleration: 0.75,
			BulletSpeed:  300,
			MuzzleOffset: 2,
			Bounds:       prefabs.Vec3Spec{X: 15, Y: 8, Z: 300},
			Collider:     prefabs.ColliderSpec{Radius: 1.5, HalfHeight: 1},
		},
		Enemy: prefabs.EnemySpec{
			Speed:    100,
			Collider: prefabs.ColliderSpec{Radius: 2, HalfHeight: 1.5},
		},
		Bullet: prefabs.BulletSpec{
			TTLSeconds: 2,
			Collider:   prefabs.ColliderSpec{Radius: 0.5, HalfHeight: 0.5, Sweep: 8},
		},
		Explosion: prefabs.ExplosionSpec{TTLSeconds: 0.5},
	}
}

// square is a closed 10x10 loop on the ground plane, 40 units long.
func square() []mgl64.Vec3 {
	return []mgl64.Vec3{{0, 0, 0}, {10, 0, 0}, {10, 0, 10}, {0, 0, 10}}
}

func fixedStep(dt float64) func() float64 {
	return func() float64 { return dt }
}

func newLevel(t *testing.T, w *ecs.World, name string) ecs.Entity {
	t.Helper()
	e, err := entity.NewLevel(w, name)
	require.NoError(t, err)
	return e
}

func markLoaded(t *testing.T, w *ecs.World, level ecs.Entity, vertices []mgl64.Vec3) {
	t.Helper()
	geo, ok := ecs.Get(w, level, component.LevelGeometryComponent.Kind())
	require.True(t, ok)
	require.True(t, geo.MarkLoaded(vertices, nav.Placement{Rotation: mgl64.QuatIdent()}))
}

func countEvents(w *ecs.World, typ ecs.EventType) int {
	n := 0
	w.Events().Each(typ, func(ecs.Event) { n++ })
	return n
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func assertVec(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}
