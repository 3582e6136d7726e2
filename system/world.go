package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/levels"
)

// World owns the loaded level, its collision world and the systems that
// move it. Platforms run before actors every step.
type World struct {
	Level     *levels.Level
	Boxes     *boxworld.World
	Layout    *levels.Layout
	Platforms *PlatformSystem
	Actors    *ActorSystem

	// Time is the simulated time in seconds since the level was built.
	Time  float64
	Frame int

	log logrus.FieldLogger
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Frame    int
	Respawns []Respawn
}

// NewWorld creates a world and loads the named level.
func NewWorld(levelName string, log logrus.FieldLogger) (*World, error) {
	w := &World{log: log}
	if err := w.Load(levelName); err != nil {
		return nil, err
	}
	return w, nil
}

// Load reads a level by name and builds it.
func (w *World) Load(levelName string) error {
	if levelName == "" {
		return fmt.Errorf("level name is empty")
	}
	lvl, err := levels.Load(levelName)
	if err != nil {
		return err
	}
	return w.LoadLevel(lvl)
}

// LoadLevel replaces the current level with lvl.
func (w *World) LoadLevel(lvl *levels.Level) error {
	if w.log == nil {
		w.log = logrus.StandardLogger()
	}
	// build aside so a broken level leaves the current one running
	boxes := boxworld.NewWorld()
	layout, err := lvl.Build(boxes)
	if err != nil {
		return fmt.Errorf("build level %s: %w", lvl.Name, err)
	}

	platforms := NewPlatformSystem(w.log)
	if err := platforms.Build(layout); err != nil {
		return fmt.Errorf("build level %s: %w", lvl.Name, err)
	}
	actors := NewActorSystem(w.log)
	if err := actors.Build(layout); err != nil {
		return fmt.Errorf("build level %s: %w", lvl.Name, err)
	}

	w.Level = lvl
	w.Boxes = boxes
	w.Layout = layout
	w.Platforms = platforms
	w.Actors = actors
	w.Time = 0
	w.Frame = 0
	w.log.WithFields(logrus.Fields{
		"level":     lvl.Name,
		"walls":     boxes.WallCount(),
		"actors":    boxes.ActorCount(),
		"platforms": platforms.Len(),
	}).Info("level loaded")
	return nil
}

// Reset rebuilds the current level from its definition.
func (w *World) Reset() error {
	if w.Level == nil {
		return fmt.Errorf("no level loaded")
	}
	return w.LoadLevel(w.Level)
}

// Reload reads the current level again, picking up edits on disk.
func (w *World) Reload() error {
	if w.Level == nil {
		return fmt.Errorf("no level loaded")
	}
	return w.Load(w.Level.Name)
}

// Player returns the input-driven actor, or 0 when the level has none.
func (w *World) Player() boxworld.ActorID {
	if w.Actors == nil {
		return 0
	}
	return w.Actors.Player()
}

// Riding reports whether the actor stands on a path or script driven wall.
// It does not use IsRiding, which only remembers the last wall to carry it.
func (w *World) Riding(id boxworld.ActorID) bool {
	if w.Layout == nil {
		return false
	}
	for _, wid := range Supports(w.Boxes, id) {
		spec := w.Layout.WallSpec(wid)
		if spec.Path != nil || spec.Script != "" {
			return true
		}
	}
	return false
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64, in Input) StepResult {
	w.Frame++
	w.Time += dt
	res := StepResult{Frame: w.Frame}

	squished := w.Platforms.Update(w.Boxes, w.Time, dt)
	res.Respawns = w.respawnSquished(squished, res.Respawns)

	w.Actors.Update(w.Boxes, dt, in)
	res.Respawns = w.respawnFallen(res.Respawns)
	return res
}
