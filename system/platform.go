package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/levels"
)

// PlatformSystem drives moving walls along paths or from scripts.
type PlatformSystem struct {
	platforms []*platform
	squished  []boxworld.ActorID
	log       logrus.FieldLogger
}

type platform struct {
	id     boxworld.WallID
	name   string
	origin boxworld.Vec2

	path *levels.PathSpec
	next int
	step int

	script   *platformScript
	disabled bool
}

func NewPlatformSystem(log logrus.FieldLogger) *PlatformSystem {
	return &PlatformSystem{log: log}
}

// Build creates a platform for every wall with a path or script.
func (s *PlatformSystem) Build(layout *levels.Layout) error {
	s.platforms = s.platforms[:0]
	for i, ws := range layout.WallSpecs {
		if ws.Path == nil && ws.Script == "" {
			continue
		}
		p := &platform{
			id:     boxworld.WallID(i + 1),
			name:   ws.Name,
			origin: boxworld.Vec2{X: float64(ws.X), Y: float64(ws.Y)},
			path:   ws.Path,
			step:   1,
		}
		if ws.Script != "" {
			script, err := loadPlatformScript(ws.Script)
			if err != nil {
				return err
			}
			p.script = script
		}
		s.platforms = append(s.platforms, p)
	}
	s.log.WithField("count", len(s.platforms)).Debug("platforms built")
	return nil
}

func (s *PlatformSystem) Len() int {
	return len(s.platforms)
}

// Update moves every platform once, in level order, and returns the actors
// squished along the way. The slice is reused by the next Update.
func (s *PlatformSystem) Update(w *boxworld.World, t, dt float64) []boxworld.ActorID {
	s.squished = s.squished[:0]
	for _, p := range s.platforms {
		if p.disabled {
			continue
		}
		var squished []boxworld.ActorID
		switch {
		case p.script != nil:
			squished = s.runScript(w, p, t, dt)
		case p.path != nil:
			squished = p.follow(w, dt)
		}
		s.squished = append(s.squished, squished...)
	}
	return s.squished
}

func (s *PlatformSystem) runScript(w *boxworld.World, p *platform, t, dt float64) []boxworld.ActorID {
	pos := w.Wall(p.id).Position.Vec2()
	target, err := p.script.target(scriptFrame{T: t, DT: dt, Origin: p.origin, Pos: pos})
	if err != nil {
		s.log.WithError(err).WithField("wall", p.name).Error("platform script failed, stopping platform")
		p.disabled = true
		return nil
	}
	// aim from the sub-pixel position so fractional targets do not drift
	exact := pos.Add(w.WallProperties(p.id).Remainder)
	return w.MoveWall(p.id, target.Sub(exact))
}

func (p *platform) follow(w *boxworld.World, dt float64) []boxworld.ActorID {
	target := p.point(p.next)
	if p.arrived(w, target) {
		p.advance()
		target = p.point(p.next)
	}
	if p.path.Slowdown > 0 {
		return w.MoveWallToWithSlowdown(p.id, target, boxworld.Vec2{X: dt, Y: dt}, p.path.Slowdown)
	}
	d := p.path.Speed * dt
	return w.MoveWallTo(p.id, target, boxworld.Vec2{X: d, Y: d})
}

func (p *platform) point(i int) boxworld.Vec2 {
	pt := p.path.Points[i]
	return boxworld.Vec2{X: pt.X, Y: pt.Y}
}

func (p *platform) arrived(w *boxworld.World, target boxworld.Vec2) bool {
	return w.Wall(p.id).Position == boxworld.RoundVec(boxworld.Vec2{X: math.Floor(target.X), Y: math.Floor(target.Y)})
}

func (p *platform) advance() {
	n := len(p.path.Points)
	if p.path.Loop {
		p.next = (p.next + 1) % n
		return
	}
	if p.next+p.step < 0 || p.next+p.step >= n {
		p.step = -p.step
	}
	p.next += p.step
}
