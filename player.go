package main

import (
	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/system"
)

// playerState is the label the debug overlay shows for the player.
type playerState string

const (
	stateIdle    playerState = "idle"
	stateRunning playerState = "running"
	stateJumping playerState = "jumping"
	stateFalling playerState = "falling"
	stateRiding  playerState = "riding"
)

func nextPlayerState(w *system.World, id boxworld.ActorID) playerState {
	m := w.Actors.Mover(id)
	if m == nil {
		return stateIdle
	}
	if !m.IsTopDown() {
		switch {
		case m.Velocity.Y < 0:
			return stateJumping
		case w.Riding(id):
			return stateRiding
		case m.Velocity.Y > 0 && !system.Standing(w.Boxes, id):
			return stateFalling
		}
	}
	if m.Velocity.X != 0 || (m.IsTopDown() && m.Velocity.Y != 0) {
		return stateRunning
	}
	return stateIdle
}
