package system

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/boxworld/boxworld"
)

type RespawnReason string

const (
	ReasonSquished RespawnReason = "squished"
	ReasonFell     RespawnReason = "fell"
)

// fallMargin is how far below the level an actor may go before it respawns.
const fallMargin = 64

type Respawn struct {
	Actor  boxworld.ActorID
	Name   string
	Reason RespawnReason
}

// respawnSquished puts squished actors back at their spawn point. An actor
// squished on both axes in one step respawns once.
func (w *World) respawnSquished(ids []boxworld.ActorID, out []Respawn) []Respawn {
	for i, id := range ids {
		if slices.Contains(ids[:i], id) {
			continue
		}
		out = append(out, w.respawn(id, ReasonSquished))
	}
	return out
}

func (w *World) respawnFallen(out []Respawn) []Respawn {
	limit := w.Level.Height + fallMargin
	for i, box := range w.Boxes.Actors() {
		if box.Position.Y > limit {
			out = append(out, w.respawn(boxworld.ActorID(i+1), ReasonFell))
		}
	}
	return out
}

func (w *World) respawn(id boxworld.ActorID, reason RespawnReason) Respawn {
	spawn := w.Layout.Spawn(id)
	w.Boxes.Actor(id).Position = spawn
	props := w.Boxes.ActorProperties(id)
	props.Remainder = boxworld.Vec2{}
	props.IsRiding = false
	w.Actors.Reset(id)

	name := w.Layout.ActorSpec(id).Name
	w.log.WithFields(logrus.Fields{
		"actor":  name,
		"reason": reason,
		"frame":  w.Frame,
		"spawn":  spawn,
	}).Info("actor respawned")
	return Respawn{Actor: id, Name: name, Reason: reason}
}
