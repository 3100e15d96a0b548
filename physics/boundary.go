package physics

import (
	"math"

	"github.com/automoto/keyrain/config"
	"github.com/jakecoffman/cp"
)

// BoundaryKind identifies one of the three static boundaries.
type BoundaryKind int

const (
	LeftChute BoundaryKind = iota
	RightChute
	Platform
)

func (k BoundaryKind) String() string {
	switch k {
	case LeftChute:
		return "left-chute"
	case RightChute:
		return "right-chute"
	case Platform:
		return "platform"
	default:
		return "unknown"
	}
}

// BoundarySpec is the geometry and material of a static boundary.
// X and Y are the centre of the rectangle before rotation.
type BoundarySpec struct {
	Kind          BoundaryKind
	X, Y          float64
	Width, Height float64
	Angle         float64
	Friction      float64
	Restitution   float64
	Visible       bool
}

// BuildBoundaries returns the left chute, right chute and platform for a
// w x h viewport. All three sit below the visible area.
func BuildBoundaries(w, h float64) [3]BoundarySpec {
	b := config.Boundary
	return [3]BoundarySpec{
		{
			Kind:     LeftChute,
			X:        w / 4,
			Y:        h + b.ChuteDrop,
			Width:    w / 2,
			Height:   b.Thickness,
			Angle:    -b.ChuteTilt,
			Friction: b.ChuteFriction,
		},
		{
			Kind:     RightChute,
			X:        w / 4 * 3,
			Y:        h + b.ChuteDrop,
			Width:    w / 2,
			Height:   b.Thickness,
			Angle:    b.ChuteTilt,
			Friction: b.ChuteFriction,
		},
		{
			Kind:        Platform,
			X:           w / 2,
			Y:           h + b.PlatformDrop,
			Width:       w * b.PlatformWidthFactor,
			Height:      b.Thickness,
			Restitution: b.PlatformRestitution,
			Friction:    b.PlatformFriction,
		},
	}
}

// Endpoints returns the world-space ends of the boundary's long axis.
func (b BoundarySpec) Endpoints() (cp.Vector, cp.Vector) {
	dx := math.Cos(b.Angle) * b.Width / 2
	dy := math.Sin(b.Angle) * b.Width / 2
	return cp.Vector{X: b.X - dx, Y: b.Y - dy}, cp.Vector{X: b.X + dx, Y: b.Y + dy}
}

// Bounds returns the axis-aligned box enclosing the rotated boundary.
func (b BoundarySpec) Bounds() (x, y, w, h float64) {
	a, c := b.Endpoints()
	r := b.Height / 2
	x = math.Min(a.X, c.X) - r
	y = math.Min(a.Y, c.Y) - r
	w = math.Abs(c.X-a.X) + 2*r
	h = math.Abs(c.Y-a.Y) + 2*r
	return x, y, w, h
}

// Boundary is a BoundarySpec that lives in a Space.
type Boundary struct {
	Spec  BoundarySpec
	Body  *cp.Body
	Shape *cp.Shape
}

func newBoundary(spec BoundarySpec) *Boundary {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	body.SetAngle(spec.Angle)

	half := spec.Width / 2
	shape := cp.NewSegment(body, cp.Vector{X: -half}, cp.Vector{X: half}, spec.Height/2)
	// The engine multiplies the friction of both shapes. Boundaries that are
	// at least as slippery as a projectile pass its friction through.
	friction := 1.0
	if spec.Friction < config.Projectile.Friction {
		friction = spec.Friction / config.Projectile.Friction
	}
	shape.SetFriction(friction)

	// Same for elasticity: boundaries with no restitution of their own
	// pass the projectile's through unchanged.
	elasticity := spec.Restitution
	if elasticity == 0 {
		elasticity = 1
	}
	shape.SetElasticity(elasticity)

	if spec.Kind == Platform {
		shape.SetCollisionType(CollisionPlatform)
	} else {
		shape.SetCollisionType(CollisionChute)
	}

	return &Boundary{Spec: spec, Body: body, Shape: shape}
}
