package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
)

// NewEnemySpawner creates the enemy spawn timer.
func NewEnemySpawner(w *ecs.World, spec prefabs.EnemySpec) (ecs.Entity, error) {
	return buildEntity(w, "enemy spawner",
		with("spawner", component.EnemySpawnerComponent.Kind(), &component.EnemySpawner{
			Interval: spec.SpawnInterval,
			Speed:    spec.Speed,
		}),
	)
}

// NewEnemy spawns an enemy ship at t flying with velocity.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, t nav.Transform, velocity mgl64.Vec3) (ecs.Entity, error) {
	tr := &component.Transform{}
	tr.SetNav(t)
	return buildEntity(w, "enemy",
		with("enemy tag", component.EnemyTagComponent.Kind(), &component.EnemyTag{}),
		with("transform", component.TransformComponent.Kind(), tr),
		with("velocity", component.VelocityComponent.Kind(), &component.Velocity{Linear: velocity}),
		with("collider", component.ColliderComponent.Kind(), collider(spec.Collider, component.LayerEnemy)),
	)
}
