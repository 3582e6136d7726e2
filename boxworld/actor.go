package boxworld

import (
	"math"

	"github.com/milk9111/boxworld/common"
)

// MoveActorX moves an actor horizontally by amount pixels, one pixel at a
// time. It returns 0 when the whole rounded step was applied, or the id of
// the wall that stopped the actor. The fractional part of amount is kept in
// the actor's remainder for later calls.
func (w *World) MoveActorX(id ActorID, amount float64) WallID {
	i := w.actorIndex(id)
	actor := &w.actors[i]
	props := &w.actorsProperties[i]

	props.Remainder.X += amount
	move := int(math.Round(props.Remainder.X))
	if move == 0 {
		return 0
	}
	props.Remainder.X -= float64(move)

	step := common.SignInt(move)
	for move != 0 {
		wallID := w.HasWallCollision(actor.Translate(IVec2{X: step}))
		if wallID != 0 && !w.blocksX(wallID, *actor) {
			wallID = 0
		}
		if wallID != 0 && !props.IsPassable {
			return wallID
		}
		actor.Position.X += step
		move -= step
	}
	return 0
}

// MoveActorY is MoveActorX on the vertical axis.
func (w *World) MoveActorY(id ActorID, amount float64) WallID {
	i := w.actorIndex(id)
	actor := &w.actors[i]
	props := &w.actorsProperties[i]

	props.Remainder.Y += amount
	move := int(math.Round(props.Remainder.Y))
	if move == 0 {
		return 0
	}
	props.Remainder.Y -= float64(move)

	step := common.SignInt(move)
	for move != 0 {
		wallID := w.HasWallCollision(actor.Translate(IVec2{Y: step}))
		if wallID != 0 && !w.blocksY(wallID, *actor) {
			wallID = 0
		}
		if wallID != 0 && !props.IsPassable {
			return wallID
		}
		actor.Position.Y += step
		move -= step
	}
	return 0
}

// blocksX reports whether a wall the actor is about to enter stops horizontal
// movement. Top and bottom one-way walls never do. Left and right one-way
// walls only stop an actor that approaches their solid side from outside.
func (w *World) blocksX(id WallID, actor Box) bool {
	wall := w.walls[id-1]
	switch w.wallsProperties[id-1].OneWaySide {
	case SideTop, SideBottom:
		return false
	case SideLeft:
		return wall.Position.X >= actor.Position.X && !wall.HasIntersection(actor)
	case SideRight:
		return wall.Position.X <= actor.Position.X && !wall.HasIntersection(actor)
	}
	return true
}

// blocksY is blocksX for vertical movement.
func (w *World) blocksY(id WallID, actor Box) bool {
	wall := w.walls[id-1]
	switch w.wallsProperties[id-1].OneWaySide {
	case SideLeft, SideRight:
		return false
	case SideTop:
		// a top wall only stops actors landing on it from above
		return wall.Position.Y >= actor.Position.Y && !wall.HasIntersection(actor)
	case SideBottom:
		return wall.Position.Y <= actor.Position.Y && !wall.HasIntersection(actor)
	}
	return true
}

// MoveActor moves an actor on X then Y. A non-zero component in the result
// means that axis was blocked.
func (w *World) MoveActor(id ActorID, amount Vec2) IVec2 {
	x := w.MoveActorX(id, amount.X)
	y := w.MoveActorY(id, amount.Y)
	return IVec2{X: int(x), Y: int(y)}
}

// MoveActorXTo moves an actor toward the x coordinate to by at most amount pixels.
func (w *World) MoveActorXTo(id ActorID, to, amount float64) WallID {
	from := float64(w.Actor(id).Position.X)
	target := common.MoveTo(from, math.Floor(to), amount)
	return w.MoveActorX(id, target-from)
}

// MoveActorYTo moves an actor toward the y coordinate to by at most amount pixels.
func (w *World) MoveActorYTo(id ActorID, to, amount float64) WallID {
	from := float64(w.Actor(id).Position.Y)
	target := common.MoveTo(from, math.Floor(to), amount)
	return w.MoveActorY(id, target-from)
}

// MoveActorTo applies MoveActorXTo and MoveActorYTo.
func (w *World) MoveActorTo(id ActorID, to, amount Vec2) IVec2 {
	x := w.MoveActorXTo(id, to.X, amount.X)
	y := w.MoveActorYTo(id, to.Y, amount.Y)
	return IVec2{X: int(x), Y: int(y)}
}

// MoveActorXToWithSlowdown eases an actor toward the x coordinate to.
func (w *World) MoveActorXToWithSlowdown(id ActorID, to, amount, slowdown float64) WallID {
	from := float64(w.Actor(id).Position.X)
	target := common.MoveToWithSlowdown(from, math.Floor(to), amount, slowdown)
	return w.MoveActorX(id, target-from)
}

// MoveActorYToWithSlowdown eases an actor toward the y coordinate to.
func (w *World) MoveActorYToWithSlowdown(id ActorID, to, amount, slowdown float64) WallID {
	from := float64(w.Actor(id).Position.Y)
	target := common.MoveToWithSlowdown(from, math.Floor(to), amount, slowdown)
	return w.MoveActorY(id, target-from)
}

// MoveActorToWithSlowdown applies the X and Y slowdown seeks.
func (w *World) MoveActorToWithSlowdown(id ActorID, to, amount Vec2, slowdown float64) IVec2 {
	x := w.MoveActorXToWithSlowdown(id, to.X, amount.X, slowdown)
	y := w.MoveActorYToWithSlowdown(id, to.Y, amount.Y, slowdown)
	return IVec2{X: int(x), Y: int(y)}
}
