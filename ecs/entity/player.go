package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/prefabs"
)

// NewPlayer spawns the player's ship riding rail.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, rail ecs.Entity) (ecs.Entity, error) {
	offset := vec(spec.StartOffset)
	t := component.NewTransform(offset)
	if railT, ok := ecs.Get(w, rail, component.TransformComponent.Kind()); ok {
		t.SetNav(railT.Nav().Mul(component.NewTransform(offset).Nav()))
	}
	return buildEntity(w, "player",
		with("player tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		with("player", component.PlayerComponent.Kind(), &component.Player{
			MaxSpeed:     spec.MaxSpeed,
			RotSpeed:     spec.RotSpeed,
			Acceleration: spec.Acceleration,
			BulletSpeed:  spec.BulletSpeed,
			MuzzleOffset: spec.MuzzleOffset,
		}),
		with("input", component.InputComponent.Kind(), &component.Input{}),
		with("rail rider", component.RailRiderComponent.Kind(), &component.RailRider{Rail: uint64(rail), Offset: offset}),
		with("transform", component.TransformComponent.Kind(), t),
		with("collider", component.ColliderComponent.Kind(), collider(spec.Collider, component.LayerPlayer)),
	)
}

// NewPlayBounds creates the play volume singleton.
func NewPlayBounds(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	return buildEntity(w, "play bounds",
		with("bounds", component.PlayBoundsComponent.Kind(), &component.PlayBounds{Extents: vec(spec.Bounds)}),
	)
}

func vec(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func collider(spec prefabs.ColliderSpec, layer component.CollisionLayer) *component.Collider {
	return &component.Collider{
		Radius:     spec.Radius,
		HalfHeight: spec.HalfHeight,
		Sweep:      spec.Sweep,
		Layer:      layer,
	}
}
