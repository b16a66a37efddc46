package system

import (
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/prefabs"
)

// Pipeline returns the gameplay systems in tick order. step supplies the
// tick length in seconds. Input systems go in front of it.
func Pipeline(cfg *prefabs.Config, step func() float64) []ecs.System {
	return []ecs.System{
		NewClockSystem(step),
		NewLevelTeardownSystem(),
		NewPathBuildSystem(),
		NewRailSpawnSystem(cfg),
		NewPathFollowSystem(),
		NewPlayerControllerSystem(),
		NewFireSystem(cfg),
		NewEnemySpawnSystem(cfg, nil),
		NewVelocitySystem(),
		NewCollisionSystem(cfg),
		NewTTLSystem(),
		NewCameraSystem(),
	}
}
