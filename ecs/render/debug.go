package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/nav"
	"golang.org/x/image/colornames"
)

const (
	mapMargin      = 40
	circleSegments = 24
	markerSize     = 4
	headingLength  = 12
)

// TopDown maps the world's XZ plane onto the screen, fitted to the current
// path. World +X is screen right and world -Z is screen up.
type TopDown struct {
	originX, originZ float64
	scale            float64
}

// NewTopDown fits lo..hi (XZ) into a screen of the given size.
func NewTopDown(lo, hi mgl64.Vec3, screenW, screenH float64) TopDown {
	spanX := math.Max(hi.X()-lo.X(), 1)
	spanZ := math.Max(hi.Z()-lo.Z(), 1)
	scale := math.Min((screenW-2*mapMargin)/spanX, (screenH-2*mapMargin)/spanZ)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	return TopDown{
		originX: lo.X() - (screenW/scale-spanX)/2,
		originZ: lo.Z() - (screenH/scale-spanZ)/2,
		scale:   scale,
	}
}

// ToScreen projects a world position.
func (m TopDown) ToScreen(p mgl64.Vec3) (float32, float32) {
	x := (p.X() - m.originX) * m.scale
	y := (p.Z() - m.originZ) * m.scale
	return float32(x), float32(y)
}

func (m TopDown) toScreenCP(v cp.Vector) (float32, float32) {
	return m.ToScreen(mgl64.Vec3{v.X, 0, v.Y})
}

// DrawWorld draws the level path and every gameplay entity top-down.
func DrawWorld(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Black)

	model := currentPath(w)
	view := viewFor(screen, model)
	if model != nil {
		drawPath(screen, view, model)
	}

	drawTagged(w, screen, view, component.RailTagComponent.Kind(), colornames.Yellow)
	drawTagged(w, screen, view, component.CameraTagComponent.Kind(), colornames.Lightskyblue)
	drawTagged(w, screen, view, component.PlayerTagComponent.Kind(), colornames.Lime)
	drawTagged(w, screen, view, component.EnemyTagComponent.Kind(), colornames.Red)
	drawTagged(w, screen, view, component.BulletTagComponent.Kind(), colornames.White)
	drawTagged(w, screen, view, component.ExplosionTagComponent.Kind(), colornames.Orange)
}

// DrawDebug overlays the collision space and a HUD.
func DrawDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	model := currentPath(w)
	if pw := w.PhysicsWorld(); pw != nil && pw.Space() != nil {
		cp.DrawSpace(pw.Space(), &spaceDrawer{screen: screen, view: viewFor(screen, model)})
	}
	drawHUD(w, screen, model)
}

func viewFor(screen *ebiten.Image, model *nav.Model) TopDown {
	b := screen.Bounds()
	return fitView(model, float64(b.Dx()), float64(b.Dy()))
}

func currentPath(w *ecs.World) *nav.Model {
	e, ok := w.First(component.PathComponent.Kind())
	if !ok {
		return nil
	}
	path, ok := ecs.Get(w, e, component.PathComponent.Kind())
	if !ok {
		return nil
	}
	return path.Model
}

func fitView(model *nav.Model, screenW, screenH float64) TopDown {
	if model == nil || model.Len() == 0 {
		return NewTopDown(mgl64.Vec3{-50, 0, -50}, mgl64.Vec3{50, 0, 50}, screenW, screenH)
	}
	wps := model.Waypoints()
	lo, hi := wps[0].Position, wps[0].Position
	for _, wp := range wps[1:] {
		for i := range lo {
			lo[i] = math.Min(lo[i], wp.Position[i])
			hi[i] = math.Max(hi[i], wp.Position[i])
		}
	}
	return NewTopDown(lo, hi, screenW, screenH)
}

func drawPath(screen *ebiten.Image, view TopDown, model *nav.Model) {
	wps := model.Waypoints()
	for i, wp := range wps {
		next := wps[(i+1)%len(wps)]
		x0, y0 := view.ToScreen(wp.Position)
		x1, y1 := view.ToScreen(next.Position)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Slategray, true)
		vector.FillRect(screen, x0-markerSize/2, y0-markerSize/2, markerSize, markerSize, colornames.Gray, false)
	}
	if len(wps) > 0 {
		x, y := view.ToScreen(wps[0].Position)
		vector.StrokeRect(screen, x-markerSize, y-markerSize, 2*markerSize, 2*markerSize, 1, colornames.Gold, false)
	}
}

func drawTagged[T any](w *ecs.World, screen *ebiten.Image, view TopDown, tag component.ComponentKind[T], clr color.Color) {
	ecs.ForEach(w, tag, func(e ecs.Entity, _ *T) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		x, y := view.ToScreen(t.Position)
		vector.FillRect(screen, x-markerSize/2, y-markerSize/2, markerSize, markerSize, clr, false)
		hx, hy := view.ToScreen(t.Position.Add(t.Nav().Forward().Mul(headingLength / view.scale)))
		vector.StrokeLine(screen, x, y, hx, hy, 1, clr, true)
	})
}

func drawHUD(w *ecs.World, screen *ebiten.Image, model *nav.Model) {
	level := "-"
	state := "-"
	if e, ok := w.First(component.LevelGeometryComponent.Kind()); ok {
		if geo, ok := ecs.Get(w, e, component.LevelGeometryComponent.Kind()); ok {
			level = geo.Name
			state = geo.State.String()
		}
	}

	distance, length := 0.0, 0.0
	if model != nil {
		length = model.Length()
	}
	if e, ok := w.First(component.RailTagComponent.Kind()); ok {
		if f, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind()); ok {
			distance = f.Distance
		}
	}

	enemies := len(w.Query(component.EnemyTagComponent.Kind()))
	bullets := len(w.Query(component.BulletTagComponent.Kind()))
	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nLevel: %s (%s)\nRail: %.1f / %.1f\nEnemies: %d  Bullets: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), level, state, distance, length, enemies, bullets)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

// spaceDrawer renders the Chipmunk space through the top-down view.
type spaceDrawer struct {
	screen *ebiten.Image
	view   TopDown
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	d.drawCircle(a, radius, outline)
	d.drawCircle(b, radius, outline)
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.toScreenCP(pos)
	vector.FillRect(d.screen, x-1, y-1, 2, 2, toNRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.6}
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.4}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x0, y0 := d.view.toScreenCP(a)
	x1, y1 := d.view.toScreenCP(b)
	vector.StrokeLine(d.screen, x0, y0, x1, y1, 1, toNRGBA(c), true)
}

func (d *spaceDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	for i := 0; i < circleSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / circleSegments
		a1 := 2 * math.Pi * float64(i+1) / circleSegments
		d.drawLine(
			cp.Vector{X: center.X + math.Cos(a0)*radius, Y: center.Y + math.Sin(a0)*radius},
			cp.Vector{X: center.X + math.Cos(a1)*radius, Y: center.Y + math.Sin(a1)*radius},
			c,
		)
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
