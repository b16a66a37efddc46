package system

import (
	"log"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/prefabs"
)

// RailSpawnSystem reacts to PathReady by spawning the rail at the path start,
// the player riding it and the camera trailing it.
type RailSpawnSystem struct {
	cfg *prefabs.Config
}

func NewRailSpawnSystem(cfg *prefabs.Config) *RailSpawnSystem {
	if cfg == nil {
		cfg = &prefabs.Config{}
	}
	return &RailSpawnSystem{cfg: cfg}
}

func (s *RailSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	w.Events().Each(ecs.EventPathReady, func(evt ecs.Event) {
		ready, ok := evt.Data.(component.PathReady)
		if !ok || ready.Model == nil {
			return
		}
		if !ecs.IsAlive(w, ecs.Entity(ready.Level)) || s.railExists(w, ready) {
			return
		}
		s.spawn(w, ready)
	})
}

func (s *RailSpawnSystem) railExists(w *ecs.World, ready component.PathReady) bool {
	found := false
	ecs.ForEach(w, component.PathFollowerComponent.Kind(), func(_ ecs.Entity, f *component.PathFollower) {
		if f.Type == component.FollowerRail && f.Model == ready.Model {
			found = true
		}
	})
	return found
}

func (s *RailSpawnSystem) spawn(w *ecs.World, ready component.PathReady) {
	speed := s.cfg.Rail.FollowerSpeed(component.FollowerRail)
	rail, err := entity.NewRail(w, ready.Model, ready.Start, speed)
	if err != nil {
		log.Printf("RailSpawn: %v", err)
		return
	}
	if _, err := entity.NewPlayer(w, s.cfg.Player, rail); err != nil {
		log.Printf("RailSpawn: %v", err)
	}
	if _, err := entity.NewCamera(w, s.cfg.Rail, rail); err != nil {
		log.Printf("RailSpawn: %v", err)
	}
	if _, ok := w.First(component.PlayBoundsComponent.Kind()); !ok {
		if _, err := entity.NewPlayBounds(w, s.cfg.Player); err != nil {
			log.Printf("RailSpawn: %v", err)
		}
	}
	if _, ok := w.First(component.EnemySpawnerComponent.Kind()); !ok {
		if _, err := entity.NewEnemySpawner(w, s.cfg.Enemy); err != nil {
			log.Printf("RailSpawn: %v", err)
		}
	}
	log.Printf("RailSpawn: rail %v spawned at %v, speed %.2f", rail, ready.Start.Position, speed)
}
