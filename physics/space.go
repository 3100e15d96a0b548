// Package physics wraps the rigid-body engine: static boundaries, ball
// projectiles, stepping and contact-begin notifications.
package physics

import (
	"math"

	"github.com/automoto/keyrain/config"
	"github.com/jakecoffman/cp"
)

// Collision types registered with the engine.
const (
	CollisionProjectile cp.CollisionType = iota + 1
	CollisionChute
	CollisionPlatform
)

const iterations = 10

// ContactFunc is called once for every pair that starts touching the
// platform. It runs inside Step, while the space is locked: callers must
// defer any removal until Step returns.
type ContactFunc func(a, b *cp.Body)

// Space owns the engine space, the current three boundaries and every live
// projectile body.
type Space struct {
	space       *cp.Space
	boundaries  []*Boundary
	platform    *cp.Body
	projectiles map[*cp.Body]struct{}

	OnContactBegin ContactFunc
}

// NewSpace creates an empty space with gravity pointing down the screen.
func NewSpace() *Space {
	s := &Space{
		space:       cp.NewSpace(),
		projectiles: make(map[*cp.Body]struct{}),
	}
	s.space.Iterations = iterations
	s.space.SetGravity(cp.Vector{X: 0, Y: config.Physics.Gravity})
	s.space.SetDamping(config.Physics.Damping)
	s.space.SleepTimeThreshold = config.Physics.SleepTimeThreshold
	s.space.SetCollisionSlop(config.Physics.CollisionSlop)

	handler := s.space.NewWildcardCollisionHandler(CollisionPlatform)
	handler.BeginFunc = s.begin

	return s
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	if s.OnContactBegin != nil {
		a, b := arb.Bodies()
		s.OnContactBegin(a, b)
	}
	return true
}

// ReplaceBoundaries removes the current boundaries, if any, and inserts
// new ones built from specs. It returns the inserted boundaries.
func (s *Space) ReplaceBoundaries(specs [3]BoundarySpec) []*Boundary {
	for _, b := range s.boundaries {
		s.space.RemoveShape(b.Shape)
		s.space.RemoveBody(b.Body)
	}
	s.boundaries = s.boundaries[:0]
	s.platform = nil

	for _, spec := range specs {
		b := newBoundary(spec)
		s.space.AddBody(b.Body)
		s.space.AddShape(b.Shape)
		s.boundaries = append(s.boundaries, b)
		if spec.Kind == Platform {
			s.platform = b.Body
		}
	}

	return s.boundaries
}

// Boundaries returns the live boundaries.
func (s *Space) Boundaries() []*Boundary {
	return s.boundaries
}

// Platform returns the current platform body, or nil before the first
// ReplaceBoundaries.
func (s *Space) Platform() *cp.Body {
	return s.platform
}

// IsPlatform reports whether body is the current platform.
func (s *Space) IsPlatform(body *cp.Body) bool {
	return body != nil && body == s.platform
}

// AddBall inserts a dynamic circle at pos.
func (s *Space) AddBall(pos cp.Vector, radius, restitution, friction float64) *cp.Body {
	mass := config.Physics.Density * math.Pi * radius * radius
	body := s.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(pos)

	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetElasticity(restitution)
	shape.SetFriction(friction)
	shape.SetCollisionType(CollisionProjectile)

	s.projectiles[body] = struct{}{}
	return body
}

// ApplyForce gives body the velocity change a single-step force would
// produce in a 60Hz verlet engine. See config.Physics.ForceToImpulse.
func (s *Space) ApplyForce(body *cp.Body, force cp.Vector) {
	if force.X == 0 && force.Y == 0 {
		return
	}
	impulse := force.Mult(config.Physics.ForceToImpulse)
	body.ApplyImpulseAtWorldPoint(impulse, body.Position())
}

// RemoveBall removes a projectile body and its shapes. Removing a body that
// is not a live projectile is a no-op.
func (s *Space) RemoveBall(body *cp.Body) bool {
	if _, ok := s.projectiles[body]; !ok {
		return false
	}
	delete(s.projectiles, body)

	var shapes []*cp.Shape
	body.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})
	for _, shape := range shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(body)
	return true
}

// Contains reports whether body is a live projectile.
func (s *Space) Contains(body *cp.Body) bool {
	_, ok := s.projectiles[body]
	return ok
}

// BallCount returns the number of live projectiles.
func (s *Space) BallCount() int {
	return len(s.projectiles)
}

// Step advances the simulation by dt seconds.
func (s *Space) Step(dt float64) {
	s.space.Step(dt)
}
