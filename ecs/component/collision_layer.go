package component

// CollisionLayer identifies what an entity is for collision filtering.
type CollisionLayer int

const (
	LayerNone CollisionLayer = iota
	LayerPlayer
	LayerEnemy
	LayerBullet
)

func (l CollisionLayer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerBullet:
		return "bullet"
	default:
		return "none"
	}
}

// Collider is a vertical capsule: Radius on the ground plane, HalfHeight up
// and down. Sweep stretches it backwards along the direction of travel.
type Collider struct {
	Radius     float64
	HalfHeight float64
	Sweep      float64
	Layer      CollisionLayer
}

var ColliderComponent = NewComponent[Collider]()
