package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows a target entity at an offset in the target's local frame.
type Camera struct {
	Target uint64
	Offset mgl64.Vec3
}

var CameraComponent = NewComponent[Camera]()
