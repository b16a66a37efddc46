package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/nav"
)

// PathReady is published once a level's path model is built. Start is the
// first waypoint's transform, where the rail spawns.
type PathReady struct {
	Level uint64
	Model *nav.Model
	Start nav.Transform
}

// LevelUnloaded is published after a level's entities are destroyed.
type LevelUnloaded struct {
	Name string
	Next string
}

// Explosion is published when a collision destroys an entity.
type Explosion struct {
	Position mgl64.Vec3
}
