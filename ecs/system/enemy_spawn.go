package system

import (
	"log"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/common"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
)

// Noise pattern tuning: how far along the noise curve each spawn steps, and
// the rows sampled for x and y.
const (
	noiseStep = 0.35
	noiseRowX = 0.5
	noiseRowY = 7.5
)

// EnemySpawnSystem spawns enemies at the far end of the play box, facing and
// flying back toward the camera. The "random" pattern scatters them
// uniformly; "noise" walks a Perlin curve so consecutive enemies form loose
// streams.
type EnemySpawnSystem struct {
	cfg     *prefabs.Config
	rng     *rand.Rand
	noise   *perlin.Perlin
	spawned int
}

// NewEnemySpawnSystem uses rng for spawn positions; nil seeds one randomly.
func NewEnemySpawnSystem(cfg *prefabs.Config, rng *rand.Rand) *EnemySpawnSystem {
	if cfg == nil {
		cfg = &prefabs.Config{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &EnemySpawnSystem{
		cfg:   cfg,
		rng:   rng,
		noise: perlin.NewPerlin(2, 2, 3, rng.Int64()),
	}
}

func (s *EnemySpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)
	bounds, ok := playBounds(w)
	if !ok {
		return
	}
	origin, ok := spawnOrigin(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.EnemySpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.EnemySpawner) {
		if sp.Interval <= 0 {
			return
		}
		sp.Timer += dt
		for sp.Timer >= sp.Interval {
			sp.Timer -= sp.Interval
			s.spawn(w, origin, bounds, sp.Speed)
		}
	})
}

func (s *EnemySpawnSystem) spawn(w *ecs.World, origin nav.Transform, bounds mgl64.Vec3, speed float64) {
	x, y := s.spawnPoint()
	s.spawned++
	local := mgl64.Vec3{x * bounds.X(), y * bounds.Y(), -bounds.Z() + 1}
	at := origin.Mul(nav.Transform{
		Position: local,
		Rotation: mgl64.QuatRotate(mgl64.DegToRad(180), nav.WorldUp),
	})
	velocity := origin.Apply(mgl64.Vec3{0, 0, speed}).Sub(origin.Position)
	if _, err := entity.NewEnemy(w, s.cfg.Enemy, at, velocity); err != nil {
		log.Printf("EnemySpawn: %v", err)
	}
}

// spawnPoint returns x and y in [-1, 1].
func (s *EnemySpawnSystem) spawnPoint() (float64, float64) {
	if s.cfg.Enemy.SpawnPattern == prefabs.SpawnPatternNoise {
		t := float64(s.spawned) * noiseStep
		return common.Clamp(2*s.noise.Noise2D(t, noiseRowX), -1, 1),
			common.Clamp(2*s.noise.Noise2D(t, noiseRowY), -1, 1)
	}
	return s.rng.Float64()*2 - 1, s.rng.Float64()*2 - 1
}

// spawnOrigin is the camera transform, or the rail's if there is no camera.
func spawnOrigin(w *ecs.World) (nav.Transform, bool) {
	for _, tag := range []ecs.Kind{component.CameraTagComponent.Kind(), component.RailTagComponent.Kind()} {
		e, ok := w.First(tag)
		if !ok {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return t.Nav(), true
		}
	}
	return nav.Transform{}, false
}
