package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type RailTag struct{}

var RailTagComponent = NewComponent[RailTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type BulletTag struct{}

var BulletTagComponent = NewComponent[BulletTag]()

type ExplosionTag struct{}

var ExplosionTagComponent = NewComponent[ExplosionTag]()
