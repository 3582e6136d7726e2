// Package boxworld is a deterministic pixel-grid collision engine for
// platformers. Walls are static or kinematic boxes, actors are moving boxes.
// All movement happens in whole pixels, one pixel at a time, with the
// fractional part carried in a per-box remainder.
//
// A World is owned by a single simulation loop. It is not safe for
// concurrent use.
package boxworld

import "fmt"

// World stores walls and actors next to their properties. Ids are stable
// until the owning collection is cleared.
type World struct {
	walls           []Box
	wallsProperties []WallProperties

	actors           []Box
	actorsProperties []ActorProperties

	// scratch buffers, refilled on each call that returns them
	squishedIDs []ActorID
	wallHitIDs  []WallID
	actorHitIDs []ActorID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Reserve grows the wall and actor storage so that at least capacity boxes
// of each kind can be appended without reallocating.
func (w *World) Reserve(capacity int) {
	w.walls = reserve(w.walls, capacity)
	w.wallsProperties = reserve(w.wallsProperties, capacity)
	w.actors = reserve(w.actors, capacity)
	w.actorsProperties = reserve(w.actorsProperties, capacity)
	w.squishedIDs = reserve(w.squishedIDs, capacity)
	w.wallHitIDs = reserve(w.wallHitIDs, capacity)
	w.actorHitIDs = reserve(w.actorHitIDs, capacity)
}

func reserve[T any](s []T, capacity int) []T {
	if capacity <= cap(s) {
		return s
	}
	grown := make([]T, len(s), capacity)
	copy(grown, s)
	return grown
}

// AppendWall adds a wall and returns its id.
func (w *World) AppendWall(box Box, oneWaySide OneWaySide) WallID {
	w.walls = append(w.walls, box)
	w.wallsProperties = append(w.wallsProperties, WallProperties{OneWaySide: oneWaySide})
	return WallID(len(w.walls))
}

// AppendActor adds an actor and returns its id.
func (w *World) AppendActor(box Box, rideSide RideSide) ActorID {
	w.actors = append(w.actors, box)
	w.actorsProperties = append(w.actorsProperties, ActorProperties{RideSide: rideSide})
	return ActorID(len(w.actors))
}

func (w *World) WallCount() int  { return len(w.walls) }
func (w *World) ActorCount() int { return len(w.actors) }

// Walls returns the wall boxes. The wall at index i has id i+1.
func (w *World) Walls() []Box { return w.walls }

// Actors returns the actor boxes. The actor at index i has id i+1.
func (w *World) Actors() []Box { return w.actors }

// Wall returns the wall box for id. It panics if id is not valid.
func (w *World) Wall(id WallID) *Box {
	return &w.walls[w.wallIndex(id)]
}

// WallProperties returns the wall properties for id. It panics if id is not valid.
func (w *World) WallProperties(id WallID) *WallProperties {
	return &w.wallsProperties[w.wallIndex(id)]
}

// Actor returns the actor box for id. It panics if id is not valid.
func (w *World) Actor(id ActorID) *Box {
	return &w.actors[w.actorIndex(id)]
}

// ActorProperties returns the actor properties for id. It panics if id is not valid.
func (w *World) ActorProperties(id ActorID) *ActorProperties {
	return &w.actorsProperties[w.actorIndex(id)]
}

func (w *World) wallIndex(id WallID) int {
	if id == 0 || int(id) > len(w.walls) {
		panic(fmt.Errorf("boxworld: %w: wall %d, have %d walls", ErrInvalidID, id, len(w.walls)))
	}
	return int(id) - 1
}

func (w *World) actorIndex(id ActorID) int {
	if id == 0 || int(id) > len(w.actors) {
		panic(fmt.Errorf("boxworld: %w: actor %d, have %d actors", ErrInvalidID, id, len(w.actors)))
	}
	return int(id) - 1
}

// HasWallCollision returns the first non-passable wall intersecting box, or 0.
func (w *World) HasWallCollision(box Box) WallID {
	for i, wall := range w.walls {
		if wall.HasIntersection(box) && !w.wallsProperties[i].IsPassable {
			return WallID(i + 1)
		}
	}
	return 0
}

// HasActorCollision returns the first non-passable actor intersecting box, or 0.
func (w *World) HasActorCollision(box Box) ActorID {
	for i, actor := range w.actors {
		if actor.HasIntersection(box) && !w.actorsProperties[i].IsPassable {
			return ActorID(i + 1)
		}
	}
	return 0
}

// WallCollisions returns every non-passable wall intersecting box.
// The result is valid until the next collision query on w.
func (w *World) WallCollisions(box Box) []WallID {
	w.wallHitIDs = w.wallHitIDs[:0]
	for i, wall := range w.walls {
		if wall.HasIntersection(box) && !w.wallsProperties[i].IsPassable {
			w.wallHitIDs = append(w.wallHitIDs, WallID(i+1))
		}
	}
	return w.wallHitIDs
}

// ActorCollisions returns every non-passable actor intersecting box.
// The result is valid until the next collision query on w.
func (w *World) ActorCollisions(box Box) []ActorID {
	w.actorHitIDs = w.actorHitIDs[:0]
	for i, actor := range w.actors {
		if actor.HasIntersection(box) && !w.actorsProperties[i].IsPassable {
			w.actorHitIDs = append(w.actorHitIDs, ActorID(i+1))
		}
	}
	return w.actorHitIDs
}

// ClearWalls removes every wall. The next appended wall gets id 1.
func (w *World) ClearWalls() {
	w.walls = w.walls[:0]
	w.wallsProperties = w.wallsProperties[:0]
}

// ClearActors removes every actor. The next appended actor gets id 1.
func (w *World) ClearActors() {
	w.actors = w.actors[:0]
	w.actorsProperties = w.actorsProperties[:0]
}

// Clear removes every wall and actor, keeping the allocated storage.
func (w *World) Clear() {
	w.ClearWalls()
	w.ClearActors()
	w.squishedIDs = w.squishedIDs[:0]
	w.wallHitIDs = w.wallHitIDs[:0]
	w.actorHitIDs = w.actorHitIDs[:0]
}

// Free releases all storage and leaves w empty.
func (w *World) Free() {
	*w = World{}
}
