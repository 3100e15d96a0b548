package physics

import (
	"math"
	"testing"

	"github.com/automoto/keyrain/config"
	"github.com/jakecoffman/cp"
)

const dt = 1.0 / 60.0

func TestBuildBoundaries(t *testing.T) {
	sizes := [][2]float64{{1, 1}, {800, 600}, {1280, 720}, {2560, 1440}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		specs := BuildBoundaries(w, h)

		if len(specs) != 3 {
			t.Fatalf("got %d boundaries", len(specs))
		}

		left, right, platform := specs[0], specs[1], specs[2]
		if left.Kind != LeftChute || right.Kind != RightChute || platform.Kind != Platform {
			t.Fatalf("unexpected order: %v %v %v", left.Kind, right.Kind, platform.Kind)
		}

		if left.X != w/4 || left.Y != h+30 || left.Width != w/2 || left.Angle != -0.1 {
			t.Errorf("left chute %+v", left)
		}
		if right.X != w/4*3 || right.Y != h+30 || right.Width != w/2 || right.Angle != 0.1 {
			t.Errorf("right chute %+v", right)
		}
		if platform.X != w/2 || platform.Y != h+400 || platform.Width != 4*w {
			t.Errorf("platform %+v", platform)
		}
		if platform.Restitution != 0.9 {
			t.Errorf("platform restitution %v, want 0.9", platform.Restitution)
		}
		for _, s := range specs {
			if s.Visible {
				t.Errorf("%v should be invisible", s.Kind)
			}
			if s.Friction != 0.001 {
				t.Errorf("%v friction %v", s.Kind, s.Friction)
			}
		}
	}
}

func TestEndpointsFollowTilt(t *testing.T) {
	spec := BuildBoundaries(800, 600)[0]
	a, b := spec.Endpoints()

	if math.Abs(b.X-a.X-400*math.Cos(0.1)) > 1e-9 {
		t.Errorf("span %v", b.X-a.X)
	}
	// Negative angle lifts the right end of the left chute.
	if b.Y >= a.Y {
		t.Errorf("left chute right end %v should be above left end %v", b.Y, a.Y)
	}
}

func TestReplaceBoundariesKeepsThree(t *testing.T) {
	s := NewSpace()

	if s.Platform() != nil {
		t.Fatal("platform before first build")
	}

	var previous *cp.Body
	for i, w := range []float64{800, 1024, 640, 640} {
		bs := s.ReplaceBoundaries(BuildBoundaries(w, 600))
		if len(bs) != 3 || len(s.Boundaries()) != 3 {
			t.Fatalf("rebuild %d left %d boundaries", i, len(s.Boundaries()))
		}
		if s.Platform() == nil || s.Platform() == previous {
			t.Fatalf("rebuild %d did not replace the platform", i)
		}
		if s.IsPlatform(previous) {
			t.Fatalf("rebuild %d: old platform still current", i)
		}
		previous = s.Platform()
	}

	count := 0
	s.space.EachShape(func(shape *cp.Shape) {
		count++
	})
	if count != 3 {
		t.Errorf("space holds %d shapes, want 3", count)
	}
}

func TestBallHitsPlatform(t *testing.T) {
	const w, h = 800.0, 600.0
	s := NewSpace()
	s.ReplaceBoundaries(BuildBoundaries(w, h))

	var hits [][2]*cp.Body
	s.OnContactBegin = func(a, b *cp.Body) {
		hits = append(hits, [2]*cp.Body{a, b})
	}

	r := config.Projectile.Radius
	ball := s.AddBall(cp.Vector{X: w / 2, Y: h + 300}, r, 0.9, 0.001)

	for i := 0; i < 120 && len(hits) == 0; i++ {
		s.Step(dt)
	}

	if len(hits) == 0 {
		t.Fatal("ball never touched the platform")
	}
	a, b := hits[0][0], hits[0][1]
	if !(s.IsPlatform(a) && b == ball) && !(s.IsPlatform(b) && a == ball) {
		t.Errorf("unexpected pair %p %p", a, b)
	}
}

func TestChuteContactIsNotReported(t *testing.T) {
	const w, h = 800.0, 600.0
	s := NewSpace()
	s.ReplaceBoundaries(BuildBoundaries(w, h))

	reported := 0
	s.OnContactBegin = func(a, b *cp.Body) { reported++ }

	s.AddBall(cp.Vector{X: w / 4, Y: h - 50}, config.Projectile.Radius, 0.9, 0.001)
	for i := 0; i < 30; i++ {
		s.Step(dt)
	}

	if reported != 0 {
		t.Errorf("got %d platform contacts from a chute drop", reported)
	}
}

func TestApplyForceLiftsBall(t *testing.T) {
	s := NewSpace()
	ball := s.AddBall(cp.Vector{X: 100, Y: 500}, 30, 0.9, 0.001)

	force := cp.Vector{X: 0.01, Y: -600.0 / 3600}
	s.ApplyForce(ball, force)

	want := force.Mult(config.Physics.ForceToImpulse / ball.Mass())
	if v := ball.Velocity(); math.Abs(v.X-want.X) > 1e-9 || math.Abs(v.Y-want.Y) > 1e-9 {
		t.Errorf("velocity %v, want %v", v, want)
	}

	still := s.AddBall(cp.Vector{X: 300, Y: 500}, 30, 0.9, 0.001)
	s.ApplyForce(still, cp.Vector{})
	if v := still.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("zero force changed velocity to %v", v)
	}
}

func TestLiftPeaksOnScreen(t *testing.T) {
	for _, h := range []float64{600, 800, 1080} {
		s := NewSpace()
		ball := s.AddBall(cp.Vector{X: 400, Y: h - 50}, config.Projectile.Radius, 0.9, 0.001)
		s.ApplyForce(ball, cp.Vector{Y: -h / config.Projectile.LiftDivisor})

		apex := ball.Position().Y
		for i := 0; i < 240; i++ {
			s.Step(dt)
			apex = math.Min(apex, ball.Position().Y)
		}

		if apex < 0 || apex > h-50 {
			t.Errorf("h=%v: apex y=%.0f, want within the viewport", h, apex)
		}
		if apex > h/2 {
			t.Errorf("h=%v: apex y=%.0f, ball barely rose", h, apex)
		}
	}
}

func TestBoundaryFrictionMatchesSlipperierShape(t *testing.T) {
	s := NewSpace()
	ball := config.Projectile.Friction

	for _, b := range s.ReplaceBoundaries(BuildBoundaries(800, 600)) {
		got := b.Shape.Friction() * ball
		want := math.Min(b.Spec.Friction, ball)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("%v: effective friction %v, want %v", b.Spec.Kind, got, want)
		}
	}
}

func TestRemoveBall(t *testing.T) {
	s := NewSpace()
	s.ReplaceBoundaries(BuildBoundaries(800, 600))
	ball := s.AddBall(cp.Vector{X: 100, Y: 100}, 30, 0.9, 0.001)

	if s.BallCount() != 1 || !s.Contains(ball) {
		t.Fatal("ball not tracked")
	}
	if !s.RemoveBall(ball) {
		t.Fatal("first removal failed")
	}
	if s.RemoveBall(ball) {
		t.Error("second removal should be a no-op")
	}
	if s.RemoveBall(s.Platform()) {
		t.Error("platform is not a ball")
	}
	if s.BallCount() != 0 {
		t.Errorf("ball count %d", s.BallCount())
	}
	s.Step(dt)
}
