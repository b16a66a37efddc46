package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

var (
	// WorldUp is the fixed up axis used when orienting waypoints.
	WorldUp = mgl64.Vec3{0, 1, 0}
	// Forward is the local axis a look-at orientation points at its target.
	Forward = mgl64.Vec3{0, 0, -1}
)

// Transform is a world-space position and orientation.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity returns the zero-position, no-rotation transform.
func Identity() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// Forward returns the transform's local -Z axis in world space.
func (t Transform) Forward() mgl64.Vec3 {
	return t.rotation().Rotate(Forward)
}

// Apply maps a point from t's local space into world space.
func (t Transform) Apply(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.rotation().Rotate(local))
}

// Mul composes t with a transform expressed in t's local space.
func (t Transform) Mul(local Transform) Transform {
	rot := t.rotation()
	return Transform{
		Position: t.Position.Add(rot.Rotate(local.Position)),
		Rotation: rot.Mul(normalized(local.Rotation)),
	}
}

// rotation is the unit form of Rotation. Lerped orientations are not unit
// length, so anything that rotates vectors goes through here.
func (t Transform) rotation() mgl64.Quat {
	return normalized(t.Rotation)
}

func normalized(q mgl64.Quat) mgl64.Quat {
	if q == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}

// Placement is the world placement of the object that owns path geometry.
type Placement struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// Apply maps a local-space vertex into world space: scale, rotate, translate.
// Zero scale components and a zero rotation are read as 1 and identity.
func (p Placement) Apply(v mgl64.Vec3) mgl64.Vec3 {
	scaled := v
	for i := range scaled {
		if p.Scale[i] != 0 {
			scaled[i] *= p.Scale[i]
		}
	}
	return p.Position.Add(normalized(p.Rotation).Rotate(scaled))
}

// lookAt returns the rotation that points Forward from eye toward target with
// WorldUp as the up hint. Coincident points yield identity; a target straight
// above or below eye keeps the world X axis as right.
func lookAt(eye, target mgl64.Vec3) mgl64.Quat {
	dir := target.Sub(eye)
	if dir.Len() <= epsilon {
		return mgl64.QuatIdent()
	}
	back := dir.Mul(-1).Normalize()
	right := WorldUp.Cross(back)
	if right.Len() <= epsilon {
		right = mgl64.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up := back.Cross(right)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(right, up, back).Mat4()).Normalize()
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
