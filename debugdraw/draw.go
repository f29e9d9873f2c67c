// Package debugdraw renders colliders, contacts and predicted impacts of a
// physics.Engine onto an ebiten image.
package debugdraw

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/oliverbestmann/arena/physics"
)

var (
	ColorBody       = cp.FColor{G: 1, A: 0.5}
	ColorThrough    = cp.FColor{R: 0.5, G: 0.5, B: 1, A: 0.3}
	ColorWall       = cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.6}
	ColorZone       = cp.FColor{R: 1, G: 0.8, A: 0.15}
	ColorContact    = cp.FColor{R: 1, A: 1}
	ColorPrediction = cp.FColor{R: 1, G: 0.5, A: 1}
)

// Overlay keeps the colliders used for drawing between frames.
type Overlay struct {
	colliders map[arena.EntityId]*physics.Collider
}

func NewOverlay() *Overlay {
	return &Overlay{colliders: map[arena.EntityId]*physics.Collider{}}
}

// Draw renders the world as seen through the given viewport.
// The engine is optional, without one no contacts are drawn.
func (o *Overlay) Draw(target *ebiten.Image, world *arena.World, engine *physics.Engine, viewport gm.Rect) {
	bounds := target.Bounds()
	screen := gm.Vec{X: float64(bounds.Dx()), Y: float64(bounds.Dy())}

	drawer := &imageDrawer{
		Image:     target,
		Transform: gm.ViewportTransform(viewport, screen),
	}

	for entityId := range o.colliders {
		if !world.IsAlive(entityId) {
			delete(o.colliders, entityId)
		}
	}

	for entityId, element := range world.Obstacles() {
		pose, shape := physics.ObstacleShapeOf(element)

		drawer.fill = ColorWall
		if !element.Solid() {
			drawer.fill = ColorZone
		}

		o.colliderOf(entityId, pose, shape).Draw(drawer)
	}

	for entityId, body := range world.Bodies() {
		pose := physics.PoseOf(body.Transform)
		shape := physics.ShapeOf(body.RigidBody.Hitbox)

		drawer.fill = ColorBody
		if _, through := body.RigidBody.Policy.(arena.Through); through {
			drawer.fill = ColorThrough
		}

		o.colliderOf(entityId, pose, shape).Draw(drawer)
	}

	if engine == nil {
		return
	}

	for key, contact := range engine.Registry().Contacts() {
		drawer.DrawDot(4, cpVec(contact.Point), ColorContact, key)
	}

	for _, body := range world.Bodies() {
		if body.RigidBody.Speed() > engine.Config.SpeedThreshold {
			// the distance covered within the prediction horizon
			start := body.Transform.Translation
			end := start.Add(body.RigidBody.Velocity.Mul(arena.DefaultStepInterval.Seconds() * engine.Config.HorizonScale))
			drawer.DrawSegment(cpVec(start), cpVec(end), ColorPrediction, nil)
		}
	}
}

func (o *Overlay) colliderOf(entityId arena.EntityId, pose physics.Pose, shape physics.Shape) *physics.Collider {
	collider, ok := o.colliders[entityId]
	if !ok || collider.Shape() != shape {
		collider = physics.NewCollider(shape)
		o.colliders[entityId] = collider
	}

	collider.SetPose(pose)
	return collider
}

func cpVec(vec gm.Vec) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}

// imageDrawer implements cp.Drawer on top of an ebiten image.
type imageDrawer struct {
	Image     *ebiten.Image
	Transform gm.Affine

	fill cp.FColor
}

func (d *imageDrawer) draw(p *vector.Path, outline cp.FColor, fill cp.FColor) {
	if fill.A > 0 {
		dpo := &vector.DrawPathOptions{AntiAlias: true}
		dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
		vector.FillPath(d.Image, p, &vector.FillOptions{}, dpo)
	}

	dpo := &vector.DrawPathOptions{AntiAlias: true}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d *imageDrawer) point(pos cp.Vector) (float32, float32) {
	transformed := d.Transform.Transform(gm.Vec{X: pos.X, Y: pos.Y})
	return float32(transformed.X), float32(transformed.Y)
}

func (d *imageDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.point(pos)
	screenRadius := float32(d.Transform.TransformVec(gm.Vec{X: radius}).Length())

	var p vector.Path
	p.Arc(x, y, screenRadius, 0, math.Pi*2, vector.Clockwise)
	p.Close()

	d.draw(&p, outline, fill)

	// mark the rotation of the circle
	edge := pos.Add(cp.ForAngle(angle).Mult(radius))
	ex, ey := d.point(edge)

	var line vector.Path
	line.MoveTo(x, y)
	line.LineTo(ex, ey)
	d.draw(&line, outline, cp.FColor{})
}

func (d *imageDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ax, ay := d.point(a)
	bx, by := d.point(b)

	var p vector.Path
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)
	d.draw(&p, fill, cp.FColor{})
}

func (d *imageDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawSegment(a, b, outline, data)
}

func (d *imageDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path

	x, y := d.point(verts[0])
	p.MoveTo(x, y)

	for _, vert := range verts[1:count] {
		x, y := d.point(vert)
		p.LineTo(x, y)
	}

	p.Close()

	d.draw(&p, outline, fill)
}

func (d *imageDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.point(pos)

	var p vector.Path
	p.Arc(x, y, float32(size/2), 0, math.Pi*2, vector.Clockwise)
	p.Close()

	d.draw(&p, fill, fill)
}

func (d *imageDrawer) Flags() uint {
	return 0
}

func (d *imageDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d *imageDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return d.fill
}

func (d *imageDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d *imageDrawer) CollisionPointColor() cp.FColor {
	return ColorContact
}

func (d *imageDrawer) Data() interface{} {
	return nil
}
