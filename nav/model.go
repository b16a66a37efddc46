package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Waypoint is one authored point on a path, annotated with the arc length
// travelled from the first waypoint to reach it.
type Waypoint struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Distance    float64
}

func (wp Waypoint) transform() Transform {
	return Transform{Position: wp.Position, Rotation: wp.Orientation}
}

// Model is an arc-length parametrized closed path. The last waypoint connects
// back to the first; waypoint 0 has distance 0 and also marks the end of the
// loop. A Model never changes after Build returns it, so a single *Model is
// shared by every follower on the level.
type Model struct {
	waypoints []Waypoint
	length    float64
}

// Length returns the total loop length including the closing segment.
func (m *Model) Length() float64 {
	if m == nil {
		return 0
	}
	return m.length
}

// Len returns the number of waypoints.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.waypoints)
}

// Waypoint returns the waypoint at index i.
func (m *Model) Waypoint(i int) (Waypoint, bool) {
	if m == nil || i < 0 || i >= len(m.waypoints) {
		return Waypoint{}, false
	}
	return m.waypoints[i], true
}

// Waypoints returns a copy of the waypoint sequence.
func (m *Model) Waypoints() []Waypoint {
	if m == nil {
		return nil
	}
	return append([]Waypoint(nil), m.waypoints...)
}

// Degenerate reports whether the path has no length to travel.
func (m *Model) Degenerate() bool {
	return m.Len() < 2 || m.length <= 0
}

// Start returns the transform of the first waypoint, or identity for an
// empty model.
func (m *Model) Start() Transform {
	if m.Len() == 0 {
		return Identity()
	}
	return m.waypoints[0].transform()
}

// TransformAt interpolates position and orientation at distance d along the
// path. d is wrapped into [0, Length()). Orientation is a component-wise
// quaternion lerp and is not renormalized.
func (m *Model) TransformAt(d float64) Transform {
	if m.Degenerate() {
		return m.Start()
	}

	d = Wrap(d, m.length)
	n := len(m.waypoints)
	for i := 0; i < n; i++ {
		prev := m.waypoints[i]
		if d < prev.Distance {
			continue
		}

		next := (i + 1) % n
		end := m.waypoints[next].Distance
		if next == 0 {
			// Waypoint 0 stores 0; the closing segment ends at the full length.
			end = m.length
		} else if d > end {
			continue
		}

		t := 0.0
		if span := end - prev.Distance; span > 0 {
			t = (d - prev.Distance) / span
		}
		return Transform{
			Position: lerpVec(prev.Position, m.waypoints[next].Position, t),
			Rotation: mgl64.QuatLerp(prev.Orientation, m.waypoints[next].Orientation, t),
		}
	}

	return Identity()
}

// Wrap maps d into [0, length). Non-finite distances and non-positive lengths
// yield 0.
func Wrap(d, length float64) float64 {
	if length <= 0 || !finite(length) || !finite(d) {
		return 0
	}
	d = math.Mod(d, length)
	if d < 0 {
		d += length
	}
	if d >= length {
		return 0
	}
	return d
}
