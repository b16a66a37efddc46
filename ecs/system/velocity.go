package system

import (
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
)

// VelocitySystem integrates velocities and despawns anything that has flown
// past the play box's far distance from the camera.
type VelocitySystem struct{}

func NewVelocitySystem() *VelocitySystem {
	return &VelocitySystem{}
}

func (s *VelocitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)
	bounds, hasBounds := playBounds(w)
	var cam *component.Transform
	if e, ok := w.First(component.CameraTagComponent.Kind()); ok {
		cam, _ = ecs.Get(w, e, component.TransformComponent.Kind())
	}

	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, v *component.Velocity, t *component.Transform) {
		t.Position = t.Position.Add(v.Linear.Mul(dt))
		if cam == nil || !hasBounds || bounds.Z() <= 0 {
			return
		}
		if t.Position.Sub(cam.Position).Len() >= bounds.Z() {
			ecs.DestroyEntity(w, e)
		}
	})
}
