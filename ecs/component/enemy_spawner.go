package component

// EnemySpawner spawns an enemy every Interval seconds ahead of the rail.
type EnemySpawner struct {
	Interval float64
	Timer    float64
	Speed    float64
}

var EnemySpawnerComponent = NewComponent[EnemySpawner]()
