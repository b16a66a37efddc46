package component

import "github.com/go-gl/mathgl/mgl64"

// Velocity is a world-space velocity in units per second.
type Velocity struct {
	Linear mgl64.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
