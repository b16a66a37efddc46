package nav

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Build converts local-space vertices, in traversal order, into a closed path
// placed by parent. Each waypoint faces the next one, the last facing the
// first.
//
// Fewer than two vertices returns ErrInvalidGeometry alongside a
// single-waypoint model; vertices that all coincide return ErrDegeneratePath
// alongside the built model. The returned model is always usable.
func Build(vertices []mgl64.Vec3, parent Placement) (*Model, error) {
	n := len(vertices)
	if n < 2 {
		var pos mgl64.Vec3
		if n == 1 {
			pos = parent.Apply(vertices[0])
		}
		m := &Model{waypoints: []Waypoint{{Position: pos, Orientation: mgl64.QuatIdent()}}}
		return m, fmt.Errorf("nav: build path from %d vertices: %w", n, ErrInvalidGeometry)
	}

	waypoints := make([]Waypoint, n)
	for i, v := range vertices {
		waypoints[i] = Waypoint{Position: parent.Apply(v), Orientation: mgl64.QuatIdent()}
	}

	total := 0.0
	for i := range waypoints {
		next := (i + 1) % n
		total += waypoints[next].Position.Sub(waypoints[i].Position).Len()
		if next != 0 {
			waypoints[next].Distance = total
		}
		waypoints[i].Orientation = lookAt(waypoints[i].Position, waypoints[next].Position)
	}

	m := &Model{waypoints: waypoints, length: total}
	if total <= 0 {
		return m, fmt.Errorf("nav: build path from %d coincident vertices: %w", n, ErrDegeneratePath)
	}
	return m, nil
}
