package component

import "github.com/go-gl/mathgl/mgl64"

// PlayBounds is the singleton play volume: X and Y are half extents of the
// rail-local box the player may move in, Z is the draw/despawn distance.
type PlayBounds struct {
	Extents mgl64.Vec3
}

var PlayBoundsComponent = NewComponent[PlayBounds]()
