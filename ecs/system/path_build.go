package system

import (
	"errors"
	"log"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
)

// PathBuildSystem builds the path model once a level's geometry has loaded.
// Until then the level stays without a path and nothing follows it.
type PathBuildSystem struct{}

func NewPathBuildSystem() *PathBuildSystem {
	return &PathBuildSystem{}
}

func (s *PathBuildSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.LevelGeometryComponent.Kind(), func(e ecs.Entity, geo *component.LevelGeometry) {
		if geo.State != component.GeometryLoaded {
			return
		}
		if ecs.Has(w, e, component.PathComponent.Kind()) {
			return
		}

		model, err := nav.Build(geo.Vertices, geo.Placement)
		switch {
		case errors.Is(err, nav.ErrInvalidGeometry):
			log.Printf("PathBuild: warning: level %q: %v", geo.Name, err)
		case errors.Is(err, nav.ErrDegeneratePath):
			log.Printf("PathBuild: warning: level %q: %v", geo.Name, err)
		case err != nil:
			log.Printf("PathBuild: level %q: %v", geo.Name, err)
		}
		if model == nil {
			return
		}

		if err := ecs.Add(w, e, component.PathComponent.Kind(), &component.Path{Model: model}); err != nil {
			log.Printf("PathBuild: level %q: add path: %v", geo.Name, err)
			return
		}

		log.Printf("PathBuild: level %q path built: %d waypoints, length %.2f", geo.Name, model.Len(), model.Length())
		w.Events().Push(ecs.Event{
			Type: ecs.EventPathReady,
			Data: component.PathReady{Level: uint64(e), Model: model, Start: model.Start()},
		})
	})
}
