package scenario

import (
	"errors"
	"fmt"
	"time"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/oliverbestmann/arena/physics"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario describes the initial state of an arena: its walls, the bodies
// moving within it and the shots fired while it runs.
type Scenario struct {
	Name     string         `yaml:"name"`
	Viewport RectSpec       `yaml:"viewport"`
	Physics  physics.Config `yaml:"physics"`

	// StepRate is the number of fixed steps per second, defaults to 64.
	StepRate int `yaml:"step_rate"`

	Obstacles []ObstacleSpec `yaml:"obstacles"`
	Bodies    []BodySpec     `yaml:"bodies"`
	Shots     []ShotSpec     `yaml:"shots"`
}

// Bounds returns the viewport of the scenario. Without a viewport, the
// bounds of all obstacles are used, grown by a small margin.
func (s *Scenario) Bounds() gm.Rect {
	viewport := s.Viewport.Rect()
	if !viewport.Size().IsZero() {
		return viewport
	}

	var bounds gm.Rect
	for idx, spec := range s.Obstacles {
		element, err := spec.ArenaElement()
		if err != nil {
			continue
		}

		rect := gm.RectWithCenterAndSize(element.Position, element.Footprint())
		if idx == 0 {
			bounds = rect
		} else {
			bounds = bounds.Union(rect)
		}
	}

	if bounds.Size().IsZero() {
		return gm.RectWithCenterAndSize(gm.VecZero, gm.Vec{X: 200, Y: 200})
	}

	return bounds.Grow(10)
}

type RectSpec struct {
	Min VecSpec `yaml:"min"`
	Max VecSpec `yaml:"max"`
}

func (r RectSpec) Rect() gm.Rect {
	return gm.RectWithPoints(gm.Vec(r.Min), gm.Vec(r.Max))
}

// VecSpec reads a vector either as a sequence [x, y] or as a mapping {x: .., y: ..}.
type VecSpec gm.Vec

func (v *VecSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return err
		}

		if len(xy) != 2 {
			return fmt.Errorf("line %d: vector needs exactly two components, got %d", value.Line, len(xy))
		}

		*v = VecSpec{X: xy[0], Y: xy[1]}
		return nil

	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}

		if err := value.Decode(&xy); err != nil {
			return err
		}

		*v = VecSpec{X: xy.X, Y: xy.Y}
		return nil

	default:
		return fmt.Errorf("line %d: vector must be a sequence or a mapping", value.Line)
	}
}

type HitboxSpec struct {
	Shape  string  `yaml:"shape"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (h HitboxSpec) Hitbox() (arena.Hitbox, error) {
	var shape arena.HitboxShape

	switch h.Shape {
	case "circle", "":
		shape = arena.HitboxCircle
	case "rectangle":
		shape = arena.HitboxRectangle
	default:
		return arena.Hitbox{}, fmt.Errorf("%w: unknown hitbox shape %q", ErrInvalidScenario, h.Shape)
	}

	height := h.Height
	if shape == arena.HitboxCircle && height == 0 {
		height = h.Width
	}

	if h.Width <= 0 || height <= 0 {
		return arena.Hitbox{}, fmt.Errorf("%w: hitbox needs a positive size", ErrInvalidScenario)
	}

	return arena.Hitbox{Shape: shape, Width: h.Width, Height: height}, nil
}

type PolicySpec struct {
	// Kind is either "through" or "bounce"
	Kind       string  `yaml:"kind"`
	MaxBounces *uint32 `yaml:"max_bounces"`
	Sticks     bool    `yaml:"sticks"`
}

func (p PolicySpec) Policy() (arena.CollisionPolicy, error) {
	switch p.Kind {
	case "through":
		return arena.Through{}, nil

	case "bounce", "":
		bounce := &arena.Bounce{Sticks: p.Sticks}
		if p.MaxBounces != nil {
			bounce.MaxBounces = arena.Some(*p.MaxBounces)
		}

		return bounce, nil

	default:
		return nil, fmt.Errorf("%w: unknown collision policy %q", ErrInvalidScenario, p.Kind)
	}
}

type BodySpec struct {
	Name     string        `yaml:"name"`
	Position VecSpec       `yaml:"position"`
	Rotation float64       `yaml:"rotation"`
	Velocity VecSpec       `yaml:"velocity"`
	Mass     float64       `yaml:"mass"`
	Hitbox   HitboxSpec    `yaml:"hitbox"`
	Policy   PolicySpec    `yaml:"policy"`
	Lifetime time.Duration `yaml:"lifetime"`
}

func (b BodySpec) Body() (arena.Body, error) {
	if b.Mass <= 0 {
		return arena.Body{}, fmt.Errorf("%w: body %q: mass must be positive", ErrInvalidScenario, b.Name)
	}

	hitbox, err := b.Hitbox.Hitbox()
	if err != nil {
		return arena.Body{}, fmt.Errorf("body %q: %w", b.Name, err)
	}

	policy, err := b.Policy.Policy()
	if err != nil {
		return arena.Body{}, fmt.Errorf("body %q: %w", b.Name, err)
	}

	body := arena.Body{
		Name: b.Name,
		Transform: arena.Transform{
			Translation: gm.Vec(b.Position),
			Rotation:    gm.DegToRad(b.Rotation),
		},
		RigidBody: arena.RigidBody{
			Velocity: gm.Vec(b.Velocity),
			Mass:     b.Mass,
			Hitbox:   hitbox,
			Policy:   policy,
		},
	}

	if b.Lifetime > 0 {
		body.Lifetime = arena.DespawnAfter(b.Lifetime)
	}

	return body, nil
}

type ObstacleSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Position VecSpec    `yaml:"position"`
	Rotation float64    `yaml:"rotation"`
	Hitbox   HitboxSpec `yaml:"hitbox"`
}

func (o ObstacleSpec) ArenaElement() (arena.ArenaElement, error) {
	var kind arena.ArenaElementKind

	switch o.Kind {
	case "wall", "":
		kind = arena.ArenaWall
	case "zone":
		kind = arena.ArenaZone
	default:
		return arena.ArenaElement{}, fmt.Errorf("%w: obstacle %q: unknown kind %q", ErrInvalidScenario, o.Name, o.Kind)
	}

	if quarters := o.Rotation / 90; quarters != float64(int(quarters)) {
		return arena.ArenaElement{}, fmt.Errorf("%w: obstacle %q: rotation must be a multiple of 90 degrees", ErrInvalidScenario, o.Name)
	}

	hitbox, err := o.Hitbox.Hitbox()
	if err != nil {
		return arena.ArenaElement{}, fmt.Errorf("obstacle %q: %w", o.Name, err)
	}

	return arena.ArenaElement{
		Name:     o.Name,
		Kind:     kind,
		Position: gm.Vec(o.Position),
		Rotation: arena.QuarterTurnOf(gm.DegToRad(o.Rotation)),
		Hitbox:   hitbox,
	}, nil
}

// ShotSpec fires a projectile from a named body once the scenario has run for At.
type ShotSpec struct {
	Shooter string        `yaml:"shooter"`
	At      time.Duration `yaml:"at"`

	// Aim in degrees, zero points up
	Aim float64 `yaml:"aim"`

	Speed   float64 `yaml:"speed"`
	Bounces *uint32 `yaml:"bounces"`
}

func (s ShotSpec) Weapon() arena.Weapon {
	weapon := arena.DefaultWeapon

	if s.Speed > 0 {
		weapon.ShotSpeed = s.Speed
	}

	if s.Bounces != nil {
		weapon.Bounces = *s.Bounces
	}

	return weapon
}
