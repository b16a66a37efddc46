package component

import "github.com/milk9111/railshooter/nav"

// Path holds the level's built path model. It lives on the level entity and
// is destroyed with it on teardown.
type Path struct {
	Model *nav.Model
}

var PathComponent = NewComponent[Path]()

// FollowerRail is the follower type used by the rail that carries the player
// and camera.
const FollowerRail = "rail"

// PathFollower moves its entity along a shared path model. Model is a
// non-owning reference; nil leaves the entity stationary.
type PathFollower struct {
	nav.Follower
	Type string
}

var PathFollowerComponent = NewComponent[PathFollower]()
