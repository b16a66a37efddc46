package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/nav"
)

//go:embed *.json *.bin
var LevelsFS embed.FS

// Level is a level descriptor. The path geometry lives in a separate vertex
// buffer named by Path.Vertices.
type Level struct {
	Name string   `json:"name"`
	Next string   `json:"next,omitempty"`
	Path PathSpec `json:"path"`
}

type PathSpec struct {
	Vertices  string        `json:"vertices"`
	Placement PlacementSpec `json:"placement"`
}

// PlacementSpec is the parent object's placement as authored: rotation in
// degrees applied X, then Y, then Z.
type PlacementSpec struct {
	Position        [3]float64  `json:"position"`
	RotationDegrees [3]float64  `json:"rotation_degrees"`
	Scale           *[3]float64 `json:"scale,omitempty"`
}

func (p PlacementSpec) Placement() nav.Placement {
	scale := mgl64.Vec3{1, 1, 1}
	if p.Scale != nil {
		scale = mgl64.Vec3(*p.Scale)
	}
	rot := mgl64.AnglesToQuat(
		mgl64.DegToRad(p.RotationDegrees[0]),
		mgl64.DegToRad(p.RotationDegrees[1]),
		mgl64.DegToRad(p.RotationDegrees[2]),
		mgl64.XYZ,
	)
	return nav.Placement{Position: mgl64.Vec3(p.Position), Rotation: rot, Scale: scale}
}

// Geometry is everything the path builder needs from a loaded level.
type Geometry struct {
	Name      string
	Next      string
	Vertices  []mgl64.Vec3
	Placement nav.Placement
}

// LoadLevel reads and decodes a level descriptor by name.
func LoadLevel(name string) (*Level, error) {
	data, err := readFile(levelFileName(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(levelFileName(name), ".json")
	}
	return &lvl, nil
}

// LoadGeometry reads a level and its vertex buffer.
func LoadGeometry(name string) (*Geometry, error) {
	lvl, err := LoadLevel(name)
	if err != nil {
		return nil, err
	}
	if lvl.Path.Vertices == "" {
		return nil, fmt.Errorf("level %s: no path vertex buffer", lvl.Name)
	}
	data, err := readFile(lvl.Path.Vertices)
	if err != nil {
		return nil, fmt.Errorf("level %s: read vertices: %w", lvl.Name, err)
	}
	vertices, err := nav.DecodeVertices(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return &Geometry{
		Name:      lvl.Name,
		Next:      lvl.Next,
		Vertices:  vertices,
		Placement: lvl.Path.Placement.Placement(),
	}, nil
}

func levelFileName(name string) string {
	base := path.Base(filepath.ToSlash(name))
	if !strings.HasSuffix(base, ".json") {
		base += ".json"
	}
	return base
}

// readFile prefers an on-disk copy under levels/ over the embedded one.
func readFile(name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(name))); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, name)
}
