package system

import (
	"log"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
)

// LevelTeardownSystem handles LevelUnloadRequest. It destroys every entity
// not marked Persistent, including the level, its path, the rail and every
// follower, then publishes LevelUnloaded. It runs before PathBuildSystem so a
// torn down path is never followed again.
type LevelTeardownSystem struct{}

func NewLevelTeardownSystem() *LevelTeardownSystem {
	return &LevelTeardownSystem{}
}

func (s *LevelTeardownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	reqEnt, ok := w.First(component.LevelUnloadRequestComponent.Kind())
	if !ok {
		return
	}
	req, _ := ecs.Get(w, reqEnt, component.LevelUnloadRequestComponent.Kind())
	next := ""
	if req != nil {
		next = req.Next
	}

	name := ""
	if levelEnt, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
		if geo, ok := ecs.Get(w, levelEnt, component.LevelGeometryComponent.Kind()); ok {
			name = geo.Name
		}
	}

	destroyed := 0
	for _, e := range ecs.Entities(w) {
		if ecs.Has(w, e, component.PersistentComponent.Kind()) {
			continue
		}
		if ecs.DestroyEntity(w, e) {
			destroyed++
		}
	}

	log.Printf("LevelTeardown: unloaded level %q (%d entities), next %q", name, destroyed, next)
	w.Events().Push(ecs.Event{
		Type: ecs.EventLevelUnloaded,
		Data: component.LevelUnloaded{Name: name, Next: next},
	})
}
