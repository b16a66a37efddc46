package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
)

// NewBullet spawns a bullet at t flying with velocity.
func NewBullet(w *ecs.World, spec prefabs.BulletSpec, t nav.Transform, velocity mgl64.Vec3) (ecs.Entity, error) {
	tr := &component.Transform{}
	tr.SetNav(t)
	return buildEntity(w, "bullet",
		with("bullet tag", component.BulletTagComponent.Kind(), &component.BulletTag{}),
		with("transform", component.TransformComponent.Kind(), tr),
		with("velocity", component.VelocityComponent.Kind(), &component.Velocity{Linear: velocity}),
		with("collider", component.ColliderComponent.Kind(), collider(spec.Collider, component.LayerBullet)),
		with("ttl", component.TTLComponent.Kind(), &component.TTL{Seconds: spec.TTLSeconds}),
	)
}

// NewExplosion places a short-lived explosion marker at pos.
func NewExplosion(w *ecs.World, spec prefabs.ExplosionSpec, pos mgl64.Vec3) (ecs.Entity, error) {
	return buildEntity(w, "explosion",
		with("explosion tag", component.ExplosionTagComponent.Kind(), &component.ExplosionTag{}),
		with("transform", component.TransformComponent.Kind(), component.NewTransform(pos)),
		with("ttl", component.TTLComponent.Kind(), &component.TTL{Seconds: spec.TTLSeconds}),
	)
}
