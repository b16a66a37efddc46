package entity

import (
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/prefabs"
)

// NewCamera creates a camera trailing target by the rail spec's offset.
func NewCamera(w *ecs.World, spec prefabs.RailSpec, target ecs.Entity) (ecs.Entity, error) {
	t := component.NewTransform(vec(spec.CameraOffset))
	if targetT, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		*t = *targetT
	}
	return buildEntity(w, "camera",
		with("camera tag", component.CameraTagComponent.Kind(), &component.CameraTag{}),
		with("camera", component.CameraComponent.Kind(), &component.Camera{
			Target: uint64(target),
			Offset: vec(spec.CameraOffset),
		}),
		with("transform", component.TransformComponent.Kind(), t),
	)
}
