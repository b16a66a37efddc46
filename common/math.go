package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MoveToward moves from toward to by at most delta.
func MoveToward(from, to mgl64.Vec3, delta float64) mgl64.Vec3 {
	diff := to.Sub(from)
	length := diff.Len()
	if length <= delta || length == 0 {
		return to
	}
	return from.Add(diff.Mul(delta / length))
}

// MoveTowardF is MoveToward for scalars.
func MoveTowardF(from, to, delta float64) float64 {
	diff := to - from
	if math.Abs(diff) <= delta || diff == 0 {
		return to
	}
	return from + math.Copysign(delta, diff)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
