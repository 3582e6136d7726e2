package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/boxworld/boxworld"
)

// Level is a room of walls and actors in pixel coordinates.
type Level struct {
	Name   string      `yaml:"name"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Walls  []WallSpec  `yaml:"walls"`
	Actors []ActorSpec `yaml:"actors"`
}

type WallSpec struct {
	Name   string    `yaml:"name"`
	X      int       `yaml:"x"`
	Y      int       `yaml:"y"`
	W      int       `yaml:"w"`
	H      int       `yaml:"h"`
	OneWay string    `yaml:"one_way"`
	Path   *PathSpec `yaml:"path"`
	// Script names a tengo script in prefabs/scripts that steers the wall.
	Script string `yaml:"script"`
}

// PathSpec makes a wall patrol through points, the first being where it starts.
type PathSpec struct {
	Points []Point `yaml:"points"`
	// Speed in pixels per second.
	Speed float64 `yaml:"speed"`
	// Slowdown > 0 eases into every point instead of moving at constant speed.
	Slowdown float64 `yaml:"slowdown"`
	// Loop goes back to the first point after the last; otherwise the path ping-pongs.
	Loop bool `yaml:"loop"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ActorSpec struct {
	Name     string `yaml:"name"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	W        int    `yaml:"w"`
	H        int    `yaml:"h"`
	Ride     string `yaml:"ride"`
	Profile  string `yaml:"profile"`
	Passable bool   `yaml:"passable"`
	// Player actors are driven by input; other actors with a profile patrol.
	Player bool `yaml:"player"`
}

// Validate checks sizes, side names and wall motion settings.
func (l *Level) Validate() error {
	var errs []error
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid level dimensions: %dx%d", l.Width, l.Height))
	}
	names := map[string]bool{}
	for i, ws := range l.Walls {
		label := specLabel("wall", i, ws.Name)
		if ws.W <= 0 || ws.H <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid size %dx%d", label, ws.W, ws.H))
		}
		side, err := boxworld.ParseSide(ws.OneWay)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
		moving := ws.Path != nil || ws.Script != ""
		if side != boxworld.SideNone && moving {
			errs = append(errs, fmt.Errorf("%s: one-way walls cannot move", label))
		}
		if ws.Path != nil && ws.Script != "" {
			errs = append(errs, fmt.Errorf("%s: path and script are exclusive", label))
		}
		if ws.Path != nil {
			if len(ws.Path.Points) < 2 {
				errs = append(errs, fmt.Errorf("%s: path needs at least 2 points", label))
			}
			if ws.Path.Speed <= 0 && ws.Path.Slowdown <= 0 {
				errs = append(errs, fmt.Errorf("%s: path needs a positive speed or slowdown", label))
			}
		}
		if ws.Name != "" {
			if names["wall:"+ws.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate name", label))
			}
			names["wall:"+ws.Name] = true
		}
	}
	for i, as := range l.Actors {
		label := specLabel("actor", i, as.Name)
		if as.W <= 0 || as.H <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid size %dx%d", label, as.W, as.H))
		}
		if _, err := boxworld.ParseSide(as.Ride); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
		if as.Player && as.Profile == "" {
			errs = append(errs, fmt.Errorf("%s: player needs a profile", label))
		}
		if as.Name != "" {
			if names["actor:"+as.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate name", label))
			}
			names["actor:"+as.Name] = true
		}
	}
	return errors.Join(errs...)
}

func specLabel(kind string, i int, name string) string {
	if name != "" {
		return fmt.Sprintf("%s %q", kind, name)
	}
	return fmt.Sprintf("%s #%d", kind, i)
}

// Layout maps a built level back to world ids.
type Layout struct {
	Walls  map[string]boxworld.WallID
	Actors map[string]boxworld.ActorID
	// WallSpecs and ActorSpecs are indexed by id-1.
	WallSpecs  []WallSpec
	ActorSpecs []ActorSpec
	Spawns     []boxworld.IVec2
}

// WallSpec returns the level entry a wall was built from.
func (l *Layout) WallSpec(id boxworld.WallID) WallSpec {
	return l.WallSpecs[id-1]
}

// ActorSpec returns the level entry an actor was built from.
func (l *Layout) ActorSpec(id boxworld.ActorID) ActorSpec {
	return l.ActorSpecs[id-1]
}

// Spawn returns where an actor started.
func (l *Layout) Spawn(id boxworld.ActorID) boxworld.IVec2 {
	return l.Spawns[id-1]
}

// Build clears w and fills it with the level's walls then actors, in document order.
func (l *Level) Build(w *boxworld.World) (*Layout, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	w.Clear()
	w.Reserve(max(len(l.Walls), len(l.Actors)))

	layout := &Layout{
		Walls:      make(map[string]boxworld.WallID, len(l.Walls)),
		Actors:     make(map[string]boxworld.ActorID, len(l.Actors)),
		WallSpecs:  append([]WallSpec(nil), l.Walls...),
		ActorSpecs: append([]ActorSpec(nil), l.Actors...),
		Spawns:     make([]boxworld.IVec2, 0, len(l.Actors)),
	}
	for _, ws := range l.Walls {
		side, _ := boxworld.ParseSide(ws.OneWay)
		id := w.AppendWall(boxworld.NewBox(ws.X, ws.Y, ws.W, ws.H), side)
		if ws.Name != "" {
			layout.Walls[ws.Name] = id
		}
	}
	for _, as := range l.Actors {
		side, _ := boxworld.ParseSide(as.Ride)
		id := w.AppendActor(boxworld.NewBox(as.X, as.Y, as.W, as.H), side)
		w.ActorProperties(id).IsPassable = as.Passable
		if as.Name != "" {
			layout.Actors[as.Name] = id
		}
		layout.Spawns = append(layout.Spawns, boxworld.IVec2{X: as.X, Y: as.Y})
	}
	return layout, nil
}
