package system

import (
	"errors"
	"log"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
)

// PathFollowSystem advances every PathFollower and writes the sampled
// transform onto its entity. Followers without a model stay where they are.
type PathFollowSystem struct {
	warned  map[ecs.Entity]struct{}
	unbound int
}

func NewPathFollowSystem() *PathFollowSystem {
	return &PathFollowSystem{warned: make(map[ecs.Entity]struct{})}
}

// UnboundCount is the number of followers skipped on the last tick because
// they had no path model.
func (s *PathFollowSystem) UnboundCount() int {
	return s.unbound
}

func (s *PathFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)
	s.unbound = 0
	for e := range s.warned {
		if !ecs.IsAlive(w, e) {
			delete(s.warned, e)
		}
	}

	ecs.ForEach(w, component.PathFollowerComponent.Kind(), func(e ecs.Entity, f *component.PathFollower) {
		next, err := f.Advance(dt)
		if errors.Is(err, nav.ErrUnboundFollower) {
			s.unbound++
			if _, ok := s.warned[e]; !ok {
				s.warned[e] = struct{}{}
				log.Printf("PathFollow: warning: %s follower %v has no path", f.Type, e)
			}
			return
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			t = &component.Transform{}
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
				return
			}
		}
		t.SetNav(next)
	})
}

// ApplyFollowerSpeeds updates live followers after the rail prefab is reloaded.
func ApplyFollowerSpeeds(w *ecs.World, rail prefabs.RailSpec) {
	ecs.ForEach(w, component.PathFollowerComponent.Kind(), func(_ ecs.Entity, f *component.PathFollower) {
		f.Speed = rail.FollowerSpeed(f.Type)
	})
}
