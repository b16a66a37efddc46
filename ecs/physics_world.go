package ecs

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/railshooter/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeBullet
)

// Contact is a pair of entities whose colliders overlapped during a step.
type Contact struct {
	A, B   Entity
	LayerA component.CollisionLayer
	LayerB component.CollisionLayer
}

type physicsEntry struct {
	body       *cp.Body
	shape      *cp.Shape
	layer      component.CollisionLayer
	y          float64
	halfHeight float64
	sweep      float64
}

// PhysicsWorld owns the Chipmunk space used for collision detection. Chipmunk
// is 2-D, so shapes live on the horizontal XZ plane and the handlers reject
// pairs whose vertical extents do not overlap. Every shape is a sensor: the
// space only reports contacts, transforms stay owned by the ECS.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	entries       map[Entity]*physicsEntry
	shapeToEntity map[*cp.Shape]Entity
	contacts      []Contact
	seen          map[[2]Entity]struct{}
}

// NewPhysicsWorld creates an empty, gravity-free collision space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 1
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		entries:       make(map[Entity]*physicsEntry),
		shapeToEntity: make(map[*cp.Shape]Entity),
		seen:          make(map[[2]Entity]struct{}),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Sync creates or moves the body for e to match its transform and collider.
// heading is the direction of travel used to orient swept colliders.
func (pw *PhysicsWorld) Sync(e Entity, pos, heading mgl64.Vec3, c *component.Collider) {
	if pw == nil || pw.space == nil || c == nil || c.Radius <= 0 {
		return
	}

	entry, ok := pw.entries[e]
	if ok && (entry.layer != c.Layer || entry.sweep != c.Sweep) {
		pw.Remove(e)
		ok = false
	}
	if !ok {
		entry = pw.addBody(e, c)
	}

	entry.y = pos.Y()
	entry.halfHeight = c.HalfHeight
	entry.body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
	entry.body.SetVelocity(0, 0)
	if c.Sweep > 0 && (heading.X() != 0 || heading.Z() != 0) {
		entry.body.SetAngle(math.Atan2(heading.Z(), heading.X()))
	}
}

func (pw *PhysicsWorld) addBody(e Entity, c *component.Collider) *physicsEntry {
	body := cp.NewBody(1, math.Inf(1))
	var shape *cp.Shape
	if c.Sweep > 0 {
		// Trails behind the body so fast movers cannot skip over a target
		// between steps.
		shape = cp.NewSegment(body, cp.Vector{}, cp.Vector{X: -c.Sweep}, c.Radius)
	} else {
		shape = cp.NewCircle(body, c.Radius, cp.Vector{})
	}
	shape.SetSensor(true)
	switch c.Layer {
	case component.LayerPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case component.LayerEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	case component.LayerBullet:
		shape.SetCollisionType(collisionTypeBullet)
	default:
		log.Printf("PhysicsWorld: entity %v has unknown collision layer %d", e, c.Layer)
	}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	entry := &physicsEntry{body: body, shape: shape, layer: c.Layer, sweep: c.Sweep}
	pw.entries[e] = entry
	pw.shapeToEntity[shape] = e
	return entry
}

// Remove drops the body for e, if any.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	entry, ok := pw.entries[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(entry.shape)
	pw.space.RemoveBody(entry.body)
	delete(pw.shapeToEntity, entry.shape)
	delete(pw.entries, e)
}

// Prune removes bodies whose entity is no longer tracked by keep.
func (pw *PhysicsWorld) Prune(keep func(Entity) bool) {
	if pw == nil || keep == nil {
		return
	}
	for e := range pw.entries {
		if !keep(e) {
			pw.Remove(e)
		}
	}
}

// Len returns the number of tracked bodies.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.entries)
}

// Step advances the space and returns the contacts it reported, each pair
// once.
func (pw *PhysicsWorld) Step(dt float64) []Contact {
	if pw == nil || pw.space == nil {
		return nil
	}
	if dt <= 0 {
		dt = 1.0 / 60
	}
	pw.contacts = pw.contacts[:0]
	clear(pw.seen)
	pw.space.Step(dt)
	return append([]Contact(nil), pw.contacts...)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	pairs := [][2]cp.CollisionType{
		{collisionTypeBullet, collisionTypeEnemy},
		{collisionTypeEnemy, collisionTypePlayer},
	}
	for _, pair := range pairs {
		handler := pw.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = pw
		// Sensors still run PreSolve every step they touch, which lets a
		// pair that first met at different heights report once they line up.
		handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*PhysicsWorld)
			if !ok || world == nil {
				return false
			}
			shapeA, shapeB := arb.Shapes()
			world.record(shapeA, shapeB)
			return false
		}
	}
	pw.handlersReady = true
}

func (pw *PhysicsWorld) record(shapeA, shapeB *cp.Shape) {
	a, okA := pw.shapeToEntity[shapeA]
	b, okB := pw.shapeToEntity[shapeB]
	if !okA || !okB {
		return
	}
	ea, eb := pw.entries[a], pw.entries[b]
	if ea == nil || eb == nil {
		return
	}
	if math.Abs(ea.y-eb.y) > ea.halfHeight+eb.halfHeight {
		return
	}

	key := [2]Entity{a, b}
	if b < a {
		key = [2]Entity{b, a}
	}
	if _, dup := pw.seen[key]; dup {
		return
	}
	pw.seen[key] = struct{}{}
	pw.contacts = append(pw.contacts, Contact{A: a, B: b, LayerA: ea.layer, LayerB: eb.layer})
}
