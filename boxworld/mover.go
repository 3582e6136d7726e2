package boxworld

import "github.com/milk9111/boxworld/common"

const (
	defaultGravityFallFactor  = 0.7
	defaultDecelerationFactor = 0.3
)

// BoxMover integrates a velocity from a desired direction. It does not touch
// a World: callers scale the returned velocity by the frame time and pass it
// to MoveActor.
type BoxMover struct {
	Direction Vec2
	Velocity  Vec2

	Speed float64
	Jump  float64
	// Gravity of 0 selects top-down mode.
	Gravity float64
	// GravityFallFactor scales gravity while Velocity.Y <= 0.
	GravityFallFactor float64
	// Acceleration of 0 snaps the velocity to Direction*Speed.
	Acceleration float64
	// DecelerationFactor is the lerp factor toward zero when not at full speed.
	DecelerationFactor float64
	// IsUnnormalized skips normalizing Direction in top-down mode.
	IsUnnormalized bool
}

// NewBoxMover returns a mover with the default fall and deceleration factors.
func NewBoxMover(speed, jump, gravity, acceleration float64) BoxMover {
	return BoxMover{
		Speed:              speed,
		Jump:               jump,
		Gravity:            gravity,
		GravityFallFactor:  defaultGravityFallFactor,
		Acceleration:       acceleration,
		DecelerationFactor: defaultDecelerationFactor,
	}
}

func (m *BoxMover) IsSmooth() bool  { return m.Acceleration != 0 }
func (m *BoxMover) IsTopDown() bool { return m.Gravity == 0 }

// Move advances the velocity by one simulation step and returns it.
func (m *BoxMover) Move() Vec2 {
	if m.IsTopDown() {
		dir := m.Direction
		if !m.IsUnnormalized {
			dir = normalize(dir)
		}
		m.Velocity.X = m.axis(m.Velocity.X, dir.X)
		m.Velocity.Y = m.axis(m.Velocity.Y, dir.Y)
		return m.Velocity
	}

	m.Velocity.X = m.axis(m.Velocity.X, m.Direction.X)
	if m.Velocity.Y > 0 {
		m.Velocity.Y += m.Gravity
	} else {
		m.Velocity.Y += m.Gravity * m.GravityFallFactor
	}
	if m.Direction.Y < 0 {
		m.Velocity.Y = -m.Jump
	}
	return m.Velocity
}

// axis integrates one velocity component toward dir*Speed.
func (m *BoxMover) axis(v, dir float64) float64 {
	target := dir * m.Speed
	if !m.IsSmooth() {
		return target
	}
	if dir > 0 {
		v = min(v+m.Acceleration, target)
	} else if dir < 0 {
		v = max(v-m.Acceleration, target)
	}
	if v != target {
		v = common.Lerp(v, 0, m.DecelerationFactor)
	}
	return v
}

func normalize(v Vec2) Vec2 {
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return v.Normalize()
}
