package boxworld

import (
	"fmt"
	"math"

	"github.com/milk9111/boxworld/common"
)

// MoveWall moves a wall by amount pixels and resolves the actors it touches.
// Overlapped actors are pushed out of the wall's leading edge, riding actors
// are carried by the same step. Actors that could not be pushed clear are
// returned as squished, in storage order. The result is valid until the next
// MoveWall call on w.
//
// MoveWall panics if the wall has a one-way side.
func (w *World) MoveWall(id WallID, amount Vec2) []ActorID {
	i := w.wallIndex(id)
	wall := &w.walls[i]
	props := &w.wallsProperties[i]
	if props.OneWaySide != SideNone {
		panic(fmt.Errorf("boxworld: %w: wall %d has one-way side %s", ErrOneWayMovingWall, id, props.OneWaySide))
	}

	props.Remainder = props.Remainder.Add(amount)
	w.squishedIDs = w.squishedIDs[:0]

	move := RoundVec(props.Remainder)
	if move.X != 0 || move.Y != 0 {
		w.updateRiding(*wall)
	}

	if move.X != 0 {
		wall.Position.X += move.X
		props.Remainder.X -= float64(move.X)
		props.IsPassable = true
		for j := range w.actors {
			if w.actorsProperties[j].IsPassable {
				continue
			}
			actorID := ActorID(j + 1)
			actor := w.actors[j]
			if wall.HasIntersection(actor) {
				push := wall.Position.X - actor.Right()
				if move.X > 0 {
					push = wall.Right() - actor.Position.X
				}
				if w.MoveActorX(actorID, float64(push)) != 0 {
					w.squishedIDs = append(w.squishedIDs, actorID)
				}
			} else if w.actorsProperties[j].IsRiding {
				w.MoveActorX(actorID, float64(move.X))
			}
		}
		props.IsPassable = false
	}

	if move.Y != 0 {
		wall.Position.Y += move.Y
		props.Remainder.Y -= float64(move.Y)
		props.IsPassable = true
		for j := range w.actors {
			if w.actorsProperties[j].IsPassable {
				continue
			}
			actorID := ActorID(j + 1)
			actor := w.actors[j]
			if wall.HasIntersection(actor) {
				push := wall.Position.Y - actor.Bottom()
				if move.Y > 0 {
					push = wall.Bottom() - actor.Position.Y
				}
				if w.MoveActorY(actorID, float64(push)) != 0 {
					w.squishedIDs = append(w.squishedIDs, actorID)
				}
			} else if w.actorsProperties[j].IsRiding {
				w.MoveActorY(actorID, float64(move.Y))
			}
		}
		props.IsPassable = false
	}

	return w.squishedIDs
}

// updateRiding marks the actors whose ride side touches wall before it moves.
func (w *World) updateRiding(wall Box) {
	for j := range w.actors {
		props := &w.actorsProperties[j]
		props.IsRiding = false
		if props.RideSide == SideNone || props.IsPassable {
			continue
		}
		probe := w.actors[j]
		switch props.RideSide {
		case SideTop:
			probe.Position.Y++
		case SideLeft:
			probe.Position.X++
		case SideRight:
			probe.Position.X--
		case SideBottom:
			probe.Position.Y--
		}
		props.IsRiding = wall.HasIntersection(probe)
	}
}

// MoveWallX moves a wall horizontally. See MoveWall.
func (w *World) MoveWallX(id WallID, amount float64) []ActorID {
	return w.MoveWall(id, Vec2{X: amount})
}

// MoveWallY moves a wall vertically. See MoveWall.
func (w *World) MoveWallY(id WallID, amount float64) []ActorID {
	return w.MoveWall(id, Vec2{Y: amount})
}

// MoveWallXTo moves a wall toward the x coordinate to by at most amount pixels.
func (w *World) MoveWallXTo(id WallID, to, amount float64) []ActorID {
	from := float64(w.Wall(id).Position.X)
	target := common.MoveTo(from, math.Floor(to), amount)
	return w.MoveWallX(id, target-from)
}

// MoveWallYTo moves a wall toward the y coordinate to by at most amount pixels.
func (w *World) MoveWallYTo(id WallID, to, amount float64) []ActorID {
	from := float64(w.Wall(id).Position.Y)
	target := common.MoveTo(from, math.Floor(to), amount)
	return w.MoveWallY(id, target-from)
}

// MoveWallTo moves a wall toward to by at most amount pixels per axis in a
// single MoveWall call.
func (w *World) MoveWallTo(id WallID, to, amount Vec2) []ActorID {
	pos := w.Wall(id).Position.Vec2()
	target := Vec2{
		X: common.MoveTo(pos.X, math.Floor(to.X), amount.X),
		Y: common.MoveTo(pos.Y, math.Floor(to.Y), amount.Y),
	}
	return w.MoveWall(id, target.Sub(pos))
}

// MoveWallXToWithSlowdown eases a wall toward the x coordinate to.
func (w *World) MoveWallXToWithSlowdown(id WallID, to, amount, slowdown float64) []ActorID {
	from := float64(w.Wall(id).Position.X)
	target := common.MoveToWithSlowdown(from, math.Floor(to), amount, slowdown)
	return w.MoveWallX(id, target-from)
}

// MoveWallYToWithSlowdown eases a wall toward the y coordinate to.
func (w *World) MoveWallYToWithSlowdown(id WallID, to, amount, slowdown float64) []ActorID {
	from := float64(w.Wall(id).Position.Y)
	target := common.MoveToWithSlowdown(from, math.Floor(to), amount, slowdown)
	return w.MoveWallY(id, target-from)
}

// MoveWallToWithSlowdown eases a wall toward to on both axes in a single
// MoveWall call.
func (w *World) MoveWallToWithSlowdown(id WallID, to, amount Vec2, slowdown float64) []ActorID {
	pos := w.Wall(id).Position.Vec2()
	target := Vec2{
		X: common.MoveToWithSlowdown(pos.X, math.Floor(to.X), amount.X, slowdown),
		Y: common.MoveToWithSlowdown(pos.Y, math.Floor(to.Y), amount.Y, slowdown),
	}
	return w.MoveWall(id, target.Sub(pos))
}
