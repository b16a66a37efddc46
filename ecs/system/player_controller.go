package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/common"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
)

// PlayerControllerSystem steers the player inside the rail's play box and
// banks the ship into its motion. Velocity and offset are rail-local; the
// world transform is composed from the rail each tick.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)
	bounds, hasBounds := playBounds(w)

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.RailRiderComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Player, in *component.Input, rider *component.RailRider, t *component.Transform) {
			target := mgl64.Vec3{in.MoveX, in.MoveY, 0}.Mul(p.MaxSpeed)
			// Acceleration is per tick.
			rider.Velocity = common.MoveToward(rider.Velocity, target, p.Acceleration)
			rider.Offset = rider.Offset.Add(rider.Velocity.Mul(dt))
			if hasBounds {
				rider.Offset[0] = common.Clamp(rider.Offset.X(), -bounds.X(), bounds.X())
				rider.Offset[1] = common.Clamp(rider.Offset.Y(), -bounds.Y(), bounds.Y())
			}

			vx, vy := rider.Velocity.X(), rider.Velocity.Y()
			rider.Roll = common.MoveTowardF(rider.Roll, mgl64.DegToRad(-2*vx), p.RotSpeed)
			local := nav.Transform{
				Position: rider.Offset,
				Rotation: mgl64.AnglesToQuat(mgl64.DegToRad(vy/2), mgl64.DegToRad(-vx/2), rider.Roll, mgl64.XYZ),
			}

			rail := nav.Identity()
			if railT, ok := ecs.Get(w, ecs.Entity(rider.Rail), component.TransformComponent.Kind()); ok {
				rail = railT.Nav()
			}
			t.SetNav(rail.Mul(local))
		})
}

func playBounds(w *ecs.World) (mgl64.Vec3, bool) {
	e, ok := w.First(component.PlayBoundsComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, false
	}
	b, ok := ecs.Get(w, e, component.PlayBoundsComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Extents, true
}
