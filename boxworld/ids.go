package boxworld

import (
	"errors"
	"fmt"
)

// BoxID is a 1-based index into one of the world's box collections. Zero means none.
type BoxID uint32

// WallID identifies a wall. Zero means none.
type WallID BoxID

// ActorID identifies an actor. Zero means none.
type ActorID BoxID

func (id WallID) Valid() bool  { return id != 0 }
func (id ActorID) Valid() bool { return id != 0 }

// Side names one side of a box.
type Side uint8

const (
	SideNone Side = iota
	SideTop
	SideLeft
	SideRight
	SideBottom
)

// OneWaySide is the side of a wall that blocks. Movement through the other sides passes.
type OneWaySide = Side

// RideSide is the side of an actor that detects contact with a moving wall.
type RideSide = Side

var sideNames = [...]string{
	SideNone:   "none",
	SideTop:    "top",
	SideLeft:   "left",
	SideRight:  "right",
	SideBottom: "bottom",
}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// ParseSide maps a side name to a Side. The empty string is SideNone.
func ParseSide(name string) (Side, error) {
	if name == "" {
		return SideNone, nil
	}
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return SideNone, fmt.Errorf("boxworld: unknown side %q", name)
}

var (
	// ErrInvalidID is the panic value cause for id 0 or an id past the end of its collection.
	ErrInvalidID = errors.New("invalid box id")
	// ErrOneWayMovingWall is the panic value cause for moving a wall that has a one-way side.
	ErrOneWayMovingWall = errors.New("one-way walls cannot move")
)

// WallProperties is the per-wall state stored next to each wall box.
type WallProperties struct {
	Remainder  Vec2
	OneWaySide OneWaySide
	// IsPassable is only true while the wall resolves actors during a move.
	IsPassable bool
}

// ActorProperties is the per-actor state stored next to each actor box.
type ActorProperties struct {
	Remainder Vec2
	RideSide  RideSide
	// IsRiding is recomputed by every wall move that changes a position.
	IsRiding bool
	// IsPassable exempts the actor from collision.
	IsPassable bool
}
