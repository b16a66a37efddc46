package component

import "github.com/go-gl/mathgl/mgl64"

// RailRider places an entity relative to a rail entity. Offset and Velocity
// are in the rail's local frame; Roll is the current bank angle in radians.
type RailRider struct {
	Rail     uint64
	Offset   mgl64.Vec3
	Velocity mgl64.Vec3
	Roll     float64
}

var RailRiderComponent = NewComponent[RailRider]()
