package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/nav"
)

// Transform is an entity's world placement.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns a transform at pos with no rotation.
func NewTransform(pos mgl64.Vec3) *Transform {
	return &Transform{Position: pos, Rotation: mgl64.QuatIdent()}
}

// Nav converts to the path package's transform type.
func (t Transform) Nav() nav.Transform {
	return nav.Transform{Position: t.Position, Rotation: t.Rotation}
}

// SetNav overwrites t from a path transform.
func (t *Transform) SetNav(n nav.Transform) {
	t.Position = n.Position
	t.Rotation = n.Rotation
}

var TransformComponent = NewComponent[Transform]()
