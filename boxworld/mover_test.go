package boxworld

import (
	"math"
	"testing"
)

func TestBoxMoverModes(t *testing.T) {
	m := NewBoxMover(5, 0, 0, 0)
	if !m.IsTopDown() || m.IsSmooth() {
		t.Fatalf("expected top-down snapping mover")
	}
	m.Gravity = 1
	m.Acceleration = 1
	if m.IsTopDown() || !m.IsSmooth() {
		t.Fatalf("expected side-view smooth mover")
	}
}

func TestBoxMoverTopDownSnap(t *testing.T) {
	cases := []struct {
		name      string
		direction Vec2
		previous  Vec2
		want      Vec2
	}{
		{"right_from_rest", Vec2{X: 1}, Vec2{}, Vec2{X: 5}},
		{"right_from_reverse", Vec2{X: 1}, Vec2{X: -30, Y: 7}, Vec2{X: 5}},
		{"stop", Vec2{}, Vec2{X: 5, Y: 5}, Vec2{}},
		{"up", Vec2{Y: -1}, Vec2{}, Vec2{Y: -5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewBoxMover(5, 0, 0, 0)
			m.Direction = c.direction
			m.Velocity = c.previous
			got := m.Move()
			if got != c.want || m.Velocity != c.want {
				t.Fatalf("expected %v, got %v (stored %v)", c.want, got, m.Velocity)
			}
		})
	}
}

func TestBoxMoverTopDownNormalizes(t *testing.T) {
	m := NewBoxMover(10, 0, 0, 0)
	m.Direction = Vec2{X: 1, Y: 1}
	v := m.Move()
	if l := v.Length(); math.Abs(l-10) > 1e-6 {
		t.Fatalf("expected diagonal speed 10, got %v (%v)", l, v)
	}

	m.IsUnnormalized = true
	v = m.Move()
	if v.X != 10 || v.Y != 10 {
		t.Fatalf("expected unnormalized (10,10), got %v", v)
	}
}

func TestBoxMoverTopDownSmooth(t *testing.T) {
	m := NewBoxMover(5, 0, 0, 3)
	m.Direction = Vec2{X: 1}

	// 3 -> lerp toward 0 -> 2.1, then 5.1 clamps to 5 and holds
	v := m.Move()
	if math.Abs(v.X-2.1) > 1e-9 {
		t.Fatalf("expected 2.1 after first step, got %v", v.X)
	}
	v = m.Move()
	if v.X != 5 {
		t.Fatalf("expected full speed 5, got %v", v.X)
	}
	v = m.Move()
	if v.X != 5 {
		t.Fatalf("expected full speed held, got %v", v.X)
	}

	// release: decelerate toward 0 without reversing
	m.Direction = Vec2{}
	prev := v.X
	for i := 0; i < 20; i++ {
		v = m.Move()
		if v.X < 0 || v.X >= prev {
			t.Fatalf("expected deceleration toward 0, got %v after %v", v.X, prev)
		}
		prev = v.X
	}
	if v.X > 0.01 {
		t.Fatalf("expected velocity near 0, got %v", v.X)
	}
}

func TestBoxMoverSmoothNeverOvershoots(t *testing.T) {
	m := NewBoxMover(4, 0, 0, 100)
	m.Direction = Vec2{X: -1}
	if v := m.Move(); v.X != -4 {
		t.Fatalf("expected clamp at -4, got %v", v.X)
	}
}

func TestBoxMoverSmoothPartialDirection(t *testing.T) {
	cases := []struct {
		name      string
		gravity   float64
		direction Vec2
		want      Vec2
	}{
		{"analog_right", 1, Vec2{X: 0.5}, Vec2{X: 10}},
		{"analog_left", 1, Vec2{X: -0.25}, Vec2{X: -10}},
		{"analog_below_step", 1, Vec2{X: 0.05}, Vec2{X: 5}},
		{"diagonal", 0, Vec2{X: 1, Y: 1}, Vec2{X: 10, Y: 10}},
		{"diagonal_up_left", 0, Vec2{X: -1, Y: -1}, Vec2{X: -10, Y: -10}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewBoxMover(100, 0, c.gravity, 10)
			m.DecelerationFactor = 0
			m.Direction = c.direction
			v := m.Move()
			if math.Abs(v.X-c.want.X) > 1e-9 {
				t.Fatalf("expected x %v, got %v", c.want.X, v.X)
			}
			if c.gravity == 0 && math.Abs(v.Y-c.want.Y) > 1e-9 {
				t.Fatalf("expected y %v, got %v", c.want.Y, v.Y)
			}
		})
	}
}

func TestBoxMoverSideView(t *testing.T) {
	m := NewBoxMover(3, 8, 1, 0)

	// rising or resting uses the fall factor
	v := m.Move()
	if math.Abs(v.Y-0.7) > 1e-9 {
		t.Fatalf("expected 0.7 after first step, got %v", v.Y)
	}
	v = m.Move()
	if math.Abs(v.Y-1.7) > 1e-9 {
		t.Fatalf("expected plain gravity once moving down, got %v", v.Y)
	}

	m.Direction = Vec2{X: 1, Y: -1}
	v = m.Move()
	if v.Y != -8 {
		t.Fatalf("expected jump to override gravity, got %v", v.Y)
	}
	if v.X != 3 {
		t.Fatalf("expected horizontal snap to 3, got %v", v.X)
	}

	m.Direction = Vec2{X: -1}
	v = m.Move()
	if math.Abs(v.Y-(-8+0.7)) > 1e-9 {
		t.Fatalf("expected fall factor while rising, got %v", v.Y)
	}
	if v.X != -3 {
		t.Fatalf("expected -3, got %v", v.X)
	}
}

func TestBoxMoverSideViewIgnoresVerticalNormalization(t *testing.T) {
	m := NewBoxMover(2, 6, 0.5, 0)
	m.Direction = Vec2{X: 1, Y: -1}
	v := m.Move()
	if v.X != 2 {
		t.Fatalf("expected raw direction.x*speed=2, got %v", v.X)
	}
}
