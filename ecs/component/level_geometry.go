package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/nav"
)

// GeometryState is the load state of a level's path geometry. The only
// transition is GeometryLoading to GeometryLoaded.
type GeometryState int

const (
	GeometryLoading GeometryState = iota
	GeometryLoaded
)

func (s GeometryState) String() string {
	switch s {
	case GeometryLoading:
		return "loading"
	case GeometryLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// LevelGeometry sits on the level entity. The outer game loop fills in the
// vertices and placement and flips State once the level's files are read;
// PathBuildSystem polls it every tick.
type LevelGeometry struct {
	Name      string
	State     GeometryState
	Vertices  []mgl64.Vec3
	Placement nav.Placement
}

// MarkLoaded moves the geometry to GeometryLoaded. It reports false if the
// geometry was already loaded.
func (g *LevelGeometry) MarkLoaded(vertices []mgl64.Vec3, placement nav.Placement) bool {
	if g == nil || g.State == GeometryLoaded {
		return false
	}
	g.Vertices = vertices
	g.Placement = placement
	g.State = GeometryLoaded
	return true
}

var LevelGeometryComponent = NewComponent[LevelGeometry]()
