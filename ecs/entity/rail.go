package entity

import (
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
)

// NewRail spawns the entity that follows the level path, placed at start.
func NewRail(w *ecs.World, model *nav.Model, start nav.Transform, speed float64) (ecs.Entity, error) {
	t := &component.Transform{}
	t.SetNav(start)
	return buildEntity(w, "rail",
		with("rail tag", component.RailTagComponent.Kind(), &component.RailTag{}),
		with("transform", component.TransformComponent.Kind(), t),
		with("path follower", component.PathFollowerComponent.Kind(), &component.PathFollower{
			Follower: nav.Follower{Model: model, Speed: speed},
			Type:     component.FollowerRail,
		}),
	)
}
