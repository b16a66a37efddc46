package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockSystem(t *testing.T) {
	tests := []struct {
		name  string
		step  func() float64
		delta float64
	}{
		{name: "fixed", step: fixedStep(0.25), delta: 0.25},
		{name: "default", step: nil, delta: DefaultStep},
		{name: "nan", step: fixedStep(math.NaN()), delta: 0},
		{name: "negative", step: fixedStep(-1), delta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			s := NewClockSystem(tt.step)
			s.Update(w)
			s.Update(w)

			e, ok := w.First(component.ClockComponent.Kind())
			require.True(t, ok)
			clock, _ := ecs.Get(w, e, component.ClockComponent.Kind())
			assert.Equal(t, tt.delta, clock.Delta)
			assert.InDelta(t, 2*tt.delta, clock.Elapsed, tolerance)
			assert.Equal(t, 2, clock.Ticks)
			assert.Equal(t, tt.delta, deltaSeconds(w))
			assert.True(t, ecs.Has(w, e, component.PersistentComponent.Kind()))
		})
	}
}

func newRider(t *testing.T, w *ecs.World) (rail, player ecs.Entity) {
	t.Helper()
	cfg := testConfig()
	_, err := entity.NewPlayBounds(w, cfg.Player)
	require.NoError(t, err)
	rail, err = entity.NewRail(w, nil, nav.Identity(), 0)
	require.NoError(t, err)
	player, err = entity.NewPlayer(w, cfg.Player, rail)
	require.NoError(t, err)
	return rail, player
}

func TestPlayerController(t *testing.T) {
	w := ecs.NewWorld()
	rail, player := newRider(t, w)
	sched := ecs.NewScheduler(NewClockSystem(fixedStep(1.0/60)), NewPlayerControllerSystem())

	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	rider, _ := ecs.Get(w, player, component.RailRiderComponent.Kind())
	in.MoveX = 1

	sched.Update(w)
	assertVec(t, mgl64.Vec3{0.75, 0, 0}, rider.Velocity, tolerance)
	assert.InDelta(t, 0.75/60, rider.Offset.X(), tolerance)
	assert.InDelta(t, mgl64.DegToRad(-1.5), rider.Roll, tolerance)

	t.Run("clamped_to_bounds", func(t *testing.T) {
		for i := 0; i < 600; i++ {
			sched.Update(w)
		}
		assertVec(t, mgl64.Vec3{30, 0, 0}, rider.Velocity, tolerance)
		assert.Equal(t, 15.0, rider.Offset.X())
		assertVec(t, mgl64.Vec3{15, 0, 0}, transformOf(t, w, player).Position, 1e-9)
		assert.InDelta(t, mgl64.DegToRad(-60), rider.Roll, tolerance)
	})

	t.Run("rides_rail", func(t *testing.T) {
		railT := transformOf(t, w, rail)
		railT.Position = mgl64.Vec3{100, 5, -20}
		railT.Rotation = mgl64.QuatRotate(mgl64.DegToRad(90), nav.WorldUp)
		in.MoveX = 0
		for i := 0; i < 120; i++ {
			sched.Update(w)
		}
		assertVec(t, mgl64.Vec3{}, rider.Velocity, tolerance)
		// Local +X on a rail yawed 90 degrees left points at world -Z.
		assertVec(t, mgl64.Vec3{100, 5, -20 - rider.Offset.X()}, transformOf(t, w, player).Position, 1e-6)
	})
}

func TestFireSystem(t *testing.T) {
	w := ecs.NewWorld()
	_, player := newRider(t, w)
	fire := NewFireSystem(testConfig())

	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	in.FirePressed = true
	fire.Update(w)
	fire.Update(w)

	assert.False(t, in.FirePressed)
	bullets := w.Query(component.BulletTagComponent.Kind())
	require.Len(t, bullets, 1)
	assertVec(t, mgl64.Vec3{0, 0, -2}, transformOf(t, w, bullets[0]).Position, 1e-9)

	v, ok := ecs.Get(w, bullets[0], component.VelocityComponent.Kind())
	require.True(t, ok)
	assertVec(t, mgl64.Vec3{0, 0, -300}, v.Linear, 1e-9)
	c, ok := ecs.Get(w, bullets[0], component.ColliderComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.LayerBullet, c.Layer)
	ttl, ok := ecs.Get(w, bullets[0], component.TTLComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 2.0, ttl.Seconds)
}

func TestEnemySpawnSystem(t *testing.T) {
	w := ecs.NewWorld()
	rail, _ := newRider(t, w)
	cfg := testConfig()
	cfg.Enemy.SpawnInterval = 1
	_, err := entity.NewCamera(w, cfg.Rail, rail)
	require.NoError(t, err)
	_, err = entity.NewEnemySpawner(w, cfg.Enemy)
	require.NoError(t, err)

	sched := ecs.NewScheduler(
		NewClockSystem(fixedStep(0.5)),
		NewEnemySpawnSystem(cfg, rand.New(rand.NewPCG(1, 2))),
	)

	sched.Update(w)
	assert.Empty(t, w.Query(component.EnemyTagComponent.Kind()))
	sched.Update(w)
	enemies := w.Query(component.EnemyTagComponent.Kind())
	require.Len(t, enemies, 1)

	pos := transformOf(t, w, enemies[0]).Position
	assert.InDelta(t, -299, pos.Z(), 1e-9)
	assert.LessOrEqual(t, math.Abs(pos.X()), 15.0)
	assert.LessOrEqual(t, math.Abs(pos.Y()), 8.0)

	v, _ := ecs.Get(w, enemies[0], component.VelocityComponent.Kind())
	assertVec(t, mgl64.Vec3{0, 0, 100}, v.Linear, 1e-9)
	// Turned around to face the camera.
	facing := transformOf(t, w, enemies[0]).Nav().Forward()
	assertVec(t, mgl64.Vec3{0, 0, 1}, facing, 1e-9)

	for i := 0; i < 4; i++ {
		sched.Update(w)
	}
	assert.Len(t, w.Query(component.EnemyTagComponent.Kind()), 3)
}

func TestVelocitySystem(t *testing.T) {
	w := ecs.NewWorld()
	rail, _ := newRider(t, w)
	_, err := entity.NewCamera(w, testConfig().Rail, rail)
	require.NoError(t, err)

	near, err := entity.NewEnemy(w, testConfig().Enemy, nav.Identity(), mgl64.Vec3{0, 0, 100})
	require.NoError(t, err)
	far, err := entity.NewEnemy(w, testConfig().Enemy,
		nav.Transform{Position: mgl64.Vec3{0, 0, -299}, Rotation: mgl64.QuatIdent()},
		mgl64.Vec3{0, 0, -10})
	require.NoError(t, err)

	sched := ecs.NewScheduler(NewClockSystem(fixedStep(0.5)), NewVelocitySystem())
	sched.Update(w)

	assertVec(t, mgl64.Vec3{0, 0, 50}, transformOf(t, w, near).Position, 1e-9)
	assert.False(t, ecs.IsAlive(w, far))
}

func TestCollisionSystem(t *testing.T) {
	cfg := testConfig()
	at := func(x, y, z float64) nav.Transform {
		return nav.Transform{Position: mgl64.Vec3{x, y, z}, Rotation: mgl64.QuatIdent()}
	}
	bulletVelocity := mgl64.Vec3{0, 0, -300}

	t.Run("bullet_hits_enemy", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy, err := entity.NewEnemy(w, cfg.Enemy, at(0, 0, 0), mgl64.Vec3{})
		require.NoError(t, err)
		bullet, err := entity.NewBullet(w, cfg.Bullet, at(0, 0.5, 1), bulletVelocity)
		require.NoError(t, err)

		NewCollisionSystem(cfg).Update(w)

		assert.False(t, ecs.IsAlive(w, enemy))
		assert.False(t, ecs.IsAlive(w, bullet))
		explosions := w.Query(component.ExplosionTagComponent.Kind())
		require.Len(t, explosions, 1)
		assertVec(t, mgl64.Vec3{0, 0.5, 1}, transformOf(t, w, explosions[0]).Position, 1e-9)
		assert.Equal(t, 1, countEvents(w, ecs.EventExplosion))
		assert.Zero(t, w.PhysicsWorld().Len())
	})

	t.Run("swept_bullet_behind_enemy", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy, err := entity.NewEnemy(w, cfg.Enemy, at(0, 0, 0), mgl64.Vec3{})
		require.NoError(t, err)
		// Already past the enemy; its trail still covers it.
		bullet, err := entity.NewBullet(w, cfg.Bullet, at(0, 0, -5), bulletVelocity)
		require.NoError(t, err)

		NewCollisionSystem(cfg).Update(w)

		assert.False(t, ecs.IsAlive(w, enemy))
		assert.False(t, ecs.IsAlive(w, bullet))
	})

	t.Run("passes_above", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy, err := entity.NewEnemy(w, cfg.Enemy, at(0, 0, 0), mgl64.Vec3{})
		require.NoError(t, err)
		bullet, err := entity.NewBullet(w, cfg.Bullet, at(0, 10, 1), bulletVelocity)
		require.NoError(t, err)

		NewCollisionSystem(cfg).Update(w)

		assert.True(t, ecs.IsAlive(w, enemy))
		assert.True(t, ecs.IsAlive(w, bullet))
		assert.Empty(t, w.Query(component.ExplosionTagComponent.Kind()))
		assert.Equal(t, 2, w.PhysicsWorld().Len())
	})

	t.Run("enemy_reaches_player", func(t *testing.T) {
		w := ecs.NewWorld()
		_, player := newRider(t, w)
		enemy, err := entity.NewEnemy(w, cfg.Enemy, at(1, 0, 0), mgl64.Vec3{0, 0, 100})
		require.NoError(t, err)

		NewCollisionSystem(cfg).Update(w)

		assert.True(t, ecs.IsAlive(w, player))
		assert.False(t, ecs.IsAlive(w, enemy))
		assert.Len(t, w.Query(component.ExplosionTagComponent.Kind()), 1)
	})

	t.Run("far_apart", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy, err := entity.NewEnemy(w, cfg.Enemy, at(50, 0, 0), mgl64.Vec3{})
		require.NoError(t, err)
		bullet, err := entity.NewBullet(w, cfg.Bullet, at(0, 0, 0), bulletVelocity)
		require.NoError(t, err)

		c := NewCollisionSystem(cfg)
		c.Update(w)
		ecs.DestroyEntity(w, bullet)
		c.Update(w)

		assert.True(t, ecs.IsAlive(w, enemy))
		assert.Equal(t, 1, w.PhysicsWorld().Len())
	})
}

func TestTTLSystem(t *testing.T) {
	w := ecs.NewWorld()
	e, err := entity.NewExplosion(w, testConfig().Explosion, mgl64.Vec3{1, 2, 3})
	require.NoError(t, err)

	sched := ecs.NewScheduler(NewClockSystem(fixedStep(0.25)), NewTTLSystem())
	sched.Update(w)
	assert.True(t, ecs.IsAlive(w, e))
	sched.Update(w)
	assert.False(t, ecs.IsAlive(w, e))
}

func TestPipeline(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.SpawnInterval = 1
	w := ecs.NewWorld()
	sched := ecs.NewScheduler(Pipeline(cfg, fixedStep(1.0/60))...)

	level := newLevel(t, w, "pipeline")
	markLoaded(t, w, level, square())
	for i := 0; i < 70; i++ {
		sched.Update(w)
	}

	assert.Len(t, w.Query(component.RailTagComponent.Kind()), 1)
	assert.Len(t, w.Query(component.PlayerTagComponent.Kind()), 1)
	assert.Len(t, w.Query(component.CameraTagComponent.Kind()), 1)
	assert.Len(t, w.Query(component.EnemyTagComponent.Kind()), 1)

	_, err := entity.RequestLevelUnload(w, "")
	require.NoError(t, err)
	sched.Update(w)

	for _, e := range ecs.Entities(w) {
		assert.True(t, ecs.Has(w, e, component.PersistentComponent.Kind()), "entity %v survived teardown", e)
	}
	assert.Zero(t, w.PhysicsWorld().Len())
}

func TestEnemySpawnNoisePattern(t *testing.T) {
	spawnAll := func(seed uint64) []mgl64.Vec3 {
		w := ecs.NewWorld()
		rail, _ := newRider(t, w)
		cfg := testConfig()
		cfg.Enemy.SpawnInterval = 0.5
		cfg.Enemy.SpawnPattern = prefabs.SpawnPatternNoise
		_, err := entity.NewEnemySpawner(w, cfg.Enemy)
		require.NoError(t, err)
		require.True(t, ecs.IsAlive(w, rail))

		sched := ecs.NewScheduler(
			NewClockSystem(fixedStep(0.5)),
			NewEnemySpawnSystem(cfg, rand.New(rand.NewPCG(seed, 7))),
		)
		for i := 0; i < 8; i++ {
			sched.Update(w)
		}

		var out []mgl64.Vec3
		for _, e := range w.Query(component.EnemyTagComponent.Kind()) {
			out = append(out, transformOf(t, w, e).Position)
		}
		return out
	}

	first := spawnAll(3)
	require.Len(t, first, 8)
	for _, p := range first {
		assert.LessOrEqual(t, math.Abs(p.X()), 15.0)
		assert.LessOrEqual(t, math.Abs(p.Y()), 8.0)
		assert.InDelta(t, -299, p.Z(), 1e-9)
	}
	assert.Equal(t, first, spawnAll(3), "same seed spawns the same stream")
}
