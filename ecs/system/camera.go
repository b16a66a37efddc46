package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
)

// CameraSystem keeps each camera at its offset in its target's local frame.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, t *component.Transform) {
		target, ok := ecs.Get(w, ecs.Entity(cam.Target), component.TransformComponent.Kind())
		if !ok {
			return
		}
		t.SetNav(target.Nav().Mul(nav.Transform{Position: cam.Offset, Rotation: mgl64.QuatIdent()}))
	})
}
