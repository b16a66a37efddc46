package nav

// DefaultRailSpeed is the rail follower's speed in distance units per second.
const DefaultRailSpeed = 20.0

// Follower is a distance cursor along a shared Model.
type Follower struct {
	Model    *Model
	Distance float64
	Speed    float64
}

// NewFollower binds a follower to m at the start of the path.
func NewFollower(m *Model, speed float64) *Follower {
	return &Follower{Model: m, Speed: speed}
}

// Advance moves the cursor by Speed*elapsed, wrapping at the end of the loop,
// and returns the transform at the new distance. A zero-length model pins the
// cursor at 0. An unbound follower does not move and returns
// ErrUnboundFollower.
func (f *Follower) Advance(elapsed float64) (Transform, error) {
	if f == nil || f.Model == nil {
		return Identity(), ErrUnboundFollower
	}

	step := f.Speed * elapsed
	if !finite(step) {
		step = 0
	}
	if length := f.Model.Length(); length > 0 {
		f.Distance = Wrap(f.Distance+step, length)
	} else {
		f.Distance = 0
	}
	return f.Model.TransformAt(f.Distance), nil
}

// Transform returns the transform at the current distance without moving.
func (f *Follower) Transform() Transform {
	if f == nil || f.Model == nil {
		return Identity()
	}
	return f.Model.TransformAt(f.Distance)
}
