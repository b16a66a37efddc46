package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/prefabs"
)

// CollisionSystem mirrors colliders into the physics world, steps it and
// resolves contacts. A bullet hitting an enemy destroys both; an enemy
// reaching the player is destroyed. Each hit leaves an explosion behind.
type CollisionSystem struct {
	cfg *prefabs.Config
}

func NewCollisionSystem(cfg *prefabs.Config) *CollisionSystem {
	if cfg == nil {
		cfg = &prefabs.Config{}
	}
	return &CollisionSystem{cfg: cfg}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pw := w.PhysicsWorld()
	if pw == nil {
		pw = ecs.NewPhysicsWorld()
		w.SetPhysicsWorld(pw)
	}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collider, t *component.Transform) {
		heading := t.Nav().Forward()
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && v.Linear.Len() > 0 {
			heading = v.Linear
		}
		pw.Sync(e, t.Position, heading, c)
	})
	pw.Prune(func(e ecs.Entity) bool {
		return ecs.IsAlive(w, e) && ecs.Has(w, e, component.ColliderComponent.Kind())
	})

	for _, contact := range pw.Step(deltaSeconds(w)) {
		s.resolve(w, contact)
	}
}

func (s *CollisionSystem) resolve(w *ecs.World, c ecs.Contact) {
	if !ecs.IsAlive(w, c.A) || !ecs.IsAlive(w, c.B) {
		return
	}

	a, b := c.A, c.B
	layerA, layerB := c.LayerA, c.LayerB
	if layerA > layerB {
		a, b = b, a
		layerA, layerB = layerB, layerA
	}

	switch {
	case layerA == component.LayerEnemy && layerB == component.LayerBullet:
		pos := position(w, b)
		ecs.DestroyEntity(w, a)
		ecs.DestroyEntity(w, b)
		s.explode(w, pos)
	case layerA == component.LayerPlayer && layerB == component.LayerEnemy:
		pos := position(w, b)
		ecs.DestroyEntity(w, b)
		s.explode(w, pos)
	}
}

func (s *CollisionSystem) explode(w *ecs.World, pos mgl64.Vec3) {
	if _, err := entity.NewExplosion(w, s.cfg.Explosion, pos); err != nil {
		log.Printf("Collision: %v", err)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventExplosion, Data: component.Explosion{Position: pos}})
}

func position(w *ecs.World, e ecs.Entity) mgl64.Vec3 {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.Position
	}
	return mgl64.Vec3{}
}
