package component

// Player holds the ship's handling settings.
type Player struct {
	MaxSpeed     float64
	RotSpeed     float64
	Acceleration float64
	BulletSpeed  float64
	MuzzleOffset float64
}

var PlayerComponent = NewComponent[Player]()
