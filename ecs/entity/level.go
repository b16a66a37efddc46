package entity

import (
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
)

// NewLevel creates the level entity in the loading state. The game loop marks
// its geometry loaded once the level files are read.
func NewLevel(w *ecs.World, name string) (ecs.Entity, error) {
	return buildEntity(w, "level",
		with("level geometry", component.LevelGeometryComponent.Kind(), &component.LevelGeometry{
			Name:  name,
			State: component.GeometryLoading,
		}),
	)
}

// RequestLevelUnload asks LevelTeardownSystem to clear the level.
func RequestLevelUnload(w *ecs.World, next string) (ecs.Entity, error) {
	return buildEntity(w, "level unload request",
		with("request", component.LevelUnloadRequestComponent.Kind(), &component.LevelUnloadRequest{Next: next}),
	)
}
