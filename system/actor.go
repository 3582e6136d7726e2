package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/levels"
	"github.com/milk9111/boxworld/prefabs"
)

// Input is one frame of player intent.
type Input struct {
	// MoveX and MoveY are in [-1, 1]. MoveY is only used by top-down movers.
	MoveX, MoveY float64
	Jump         bool
}

// ActorSystem moves every actor that has a mover profile.
type ActorSystem struct {
	actors []*actor
	player boxworld.ActorID
	log    logrus.FieldLogger
}

type actor struct {
	id     boxworld.ActorID
	name   string
	mover  boxworld.BoxMover
	player bool
	facing float64
}

func NewActorSystem(log logrus.FieldLogger) *ActorSystem {
	return &ActorSystem{log: log}
}

// Build loads the mover profile of every actor that names one.
func (s *ActorSystem) Build(layout *levels.Layout) error {
	s.actors = s.actors[:0]
	s.player = 0
	for i, as := range layout.ActorSpecs {
		if as.Profile == "" {
			continue
		}
		spec, err := prefabs.LoadMoverSpec(as.Profile)
		if err != nil {
			return err
		}
		a := &actor{
			id:     boxworld.ActorID(i + 1),
			name:   as.Name,
			mover:  spec.Mover(),
			player: as.Player,
			facing: 1,
		}
		if a.player && !s.player.Valid() {
			s.player = a.id
		}
		s.actors = append(s.actors, a)
		s.log.WithFields(logrus.Fields{"actor": as.Name, "profile": spec.Name}).Debug("actor mover loaded")
	}
	return nil
}

// Player returns the first input-driven actor, or 0.
func (s *ActorSystem) Player() boxworld.ActorID {
	return s.player
}

// Mover exposes an actor's mover state, or nil for actors without a profile.
func (s *ActorSystem) Mover(id boxworld.ActorID) *boxworld.BoxMover {
	for _, a := range s.actors {
		if a.id == id {
			return &a.mover
		}
	}
	return nil
}

// Update steers, integrates and moves every actor once, in level order.
func (s *ActorSystem) Update(w *boxworld.World, dt float64, in Input) {
	for _, a := range s.actors {
		a.mover.Direction = s.direction(w, a, in)
		v := a.mover.Move()

		blocked := w.MoveActor(a.id, v.Mult(dt))
		if blocked.X != 0 {
			a.mover.Velocity.X = 0
			if !a.player {
				a.facing = -a.facing
			}
		}
		if blocked.Y != 0 {
			a.mover.Velocity.Y = 0
		}
	}
}

func (s *ActorSystem) direction(w *boxworld.World, a *actor, in Input) boxworld.Vec2 {
	if !a.player {
		return boxworld.Vec2{X: a.facing}
	}
	dir := boxworld.Vec2{X: in.MoveX}
	if a.mover.IsTopDown() {
		dir.Y = in.MoveY
		return dir
	}
	if in.Jump && Standing(w, a.id) {
		dir.Y = -1
	}
	return dir
}

// Reset clears the velocity of a respawned actor.
func (s *ActorSystem) Reset(id boxworld.ActorID) {
	if m := s.Mover(id); m != nil {
		m.Velocity = boxworld.Vec2{}
		m.Direction = boxworld.Vec2{}
	}
}

// Standing reports whether the actor rests on a wall that would stop it
// falling: a solid wall or a one-way top wall whose surface it stands on.
func Standing(w *boxworld.World, id boxworld.ActorID) bool {
	return len(Supports(w, id)) > 0
}

// Supports returns the walls directly under the actor that hold it up.
func Supports(w *boxworld.World, id boxworld.ActorID) []boxworld.WallID {
	box := *w.Actor(id)
	probe := box.Translate(boxworld.IVec2{Y: 1})
	var out []boxworld.WallID
	for _, wid := range w.WallCollisions(probe) {
		switch w.WallProperties(wid).OneWaySide {
		case boxworld.SideNone:
			out = append(out, wid)
		case boxworld.SideTop:
			if w.Wall(wid).Position.Y >= box.Bottom() {
				out = append(out, wid)
			}
		}
	}
	return out
}
