package entity

import (
	"fmt"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity) error

type namedBuild struct {
	name  string
	build componentBuildFn
}

func with[T any](name string, kind component.ComponentKind[T], value *T) namedBuild {
	return namedBuild{
		name: name,
		build: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, kind, value)
		},
	}
}

// buildEntity creates an entity and adds each component in order. A failed
// add destroys the half-built entity.
func buildEntity(w *ecs.World, label string, components ...namedBuild) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: world is nil", label)
	}
	e := ecs.CreateEntity(w)
	for _, c := range components {
		if err := c.build(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add %s: %w", label, c.name, err)
		}
	}
	return e, nil
}
