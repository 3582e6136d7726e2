package boxworld

import (
	"errors"
	"testing"
)

// expectPanic runs fn and fails unless it panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}

func TestWorldAppendIDs(t *testing.T) {
	w := NewWorld()
	for i := 1; i <= 3; i++ {
		if id := w.AppendWall(NewBox(i*10, 0, 4, 4), SideNone); id != WallID(i) {
			t.Fatalf("expected wall id %d, got %d", i, id)
		}
		if id := w.AppendActor(NewBox(i*10, 10, 4, 4), SideTop); id != ActorID(i) {
			t.Fatalf("expected actor id %d, got %d", i, id)
		}
	}
	if w.WallCount() != 3 || w.ActorCount() != 3 {
		t.Fatalf("expected 3 walls and 3 actors, got %d %d", w.WallCount(), w.ActorCount())
	}
	if got := w.Wall(2).Position.X; got != 20 {
		t.Fatalf("expected wall 2 at x=20, got %d", got)
	}
	if got := w.ActorProperties(3).RideSide; got != SideTop {
		t.Fatalf("expected ride side top, got %s", got)
	}

	// ids stay put while other boxes move
	w.MoveActorX(1, 3)
	if got := w.Actor(2).Position.X; got != 20 {
		t.Fatalf("expected actor 2 untouched, got x=%d", got)
	}
}

func TestWorldClearResetsIDs(t *testing.T) {
	w := NewWorld()
	w.AppendWall(NewBox(0, 0, 1, 1), SideNone)
	w.AppendWall(NewBox(2, 0, 1, 1), SideNone)
	w.AppendActor(NewBox(0, 5, 1, 1), SideNone)

	w.Clear()
	if w.WallCount() != 0 || w.ActorCount() != 0 {
		t.Fatalf("expected empty world after clear")
	}
	if id := w.AppendWall(NewBox(0, 0, 1, 1), SideNone); id != 1 {
		t.Fatalf("expected first wall id 1 after clear, got %d", id)
	}
	if id := w.AppendActor(NewBox(0, 0, 1, 1), SideNone); id != 1 {
		t.Fatalf("expected first actor id 1 after clear, got %d", id)
	}

	w.ClearActors()
	if w.WallCount() != 1 || w.ActorCount() != 0 {
		t.Fatalf("expected ClearActors to keep walls, got %d walls %d actors", w.WallCount(), w.ActorCount())
	}
	w.ClearWalls()
	if w.WallCount() != 0 {
		t.Fatalf("expected no walls, got %d", w.WallCount())
	}
}

func TestWorldReserveAndFree(t *testing.T) {
	w := NewWorld()
	w.AppendWall(NewBox(0, 0, 1, 1), SideNone)
	w.Reserve(64)
	if cap(w.walls) < 64 || cap(w.actors) < 64 {
		t.Fatalf("expected capacity of at least 64, got %d %d", cap(w.walls), cap(w.actors))
	}
	if w.WallCount() != 1 || w.Wall(1).Size.X != 1 {
		t.Fatalf("expected reserve to keep existing walls")
	}

	w.Free()
	if w.WallCount() != 0 || cap(w.walls) != 0 || cap(w.actors) != 0 {
		t.Fatalf("expected free to release storage")
	}
	if id := w.AppendActor(NewBox(0, 0, 1, 1), SideNone); id != 1 {
		t.Fatalf("expected world usable after free, got id %d", id)
	}
}

func TestWorldInvalidIDPanics(t *testing.T) {
	w := NewWorld()
	w.AppendWall(NewBox(0, 0, 1, 1), SideNone)
	w.AppendActor(NewBox(0, 0, 1, 1), SideNone)

	cases := []struct {
		name string
		fn   func()
	}{
		{"wall_zero", func() { w.Wall(0) }},
		{"wall_past_end", func() { w.Wall(2) }},
		{"wall_properties_past_end", func() { w.WallProperties(5) }},
		{"actor_zero", func() { w.Actor(0) }},
		{"actor_properties_past_end", func() { w.ActorProperties(2) }},
		{"move_actor_zero", func() { w.MoveActorX(0, 1) }},
		{"move_wall_past_end", func() { w.MoveWall(9, Vec2{X: 1}) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectPanic(t, ErrInvalidID, c.fn)
		})
	}
}

func TestWorldCollisionQueries(t *testing.T) {
	w := NewWorld()
	w.AppendWall(NewBox(0, 0, 10, 10), SideNone)
	w.AppendWall(NewBox(5, 5, 10, 10), SideNone)
	w.AppendWall(NewBox(100, 100, 10, 10), SideNone)
	a1 := w.AppendActor(NewBox(6, 6, 2, 2), SideNone)
	a2 := w.AppendActor(NewBox(7, 7, 2, 2), SideNone)

	probe := NewBox(6, 6, 2, 2)
	if id := w.HasWallCollision(probe); id != 1 {
		t.Fatalf("expected first wall hit 1, got %d", id)
	}
	walls := w.WallCollisions(probe)
	if len(walls) != 2 || walls[0] != 1 || walls[1] != 2 {
		t.Fatalf("expected walls [1 2], got %v", walls)
	}
	if id := w.HasWallCollision(NewBox(50, 50, 2, 2)); id != 0 {
		t.Fatalf("expected no wall hit, got %d", id)
	}
	if got := w.WallCollisions(NewBox(50, 50, 2, 2)); len(got) != 0 {
		t.Fatalf("expected no walls, got %v", got)
	}

	actors := w.ActorCollisions(probe)
	if len(actors) != 2 || actors[0] != a1 || actors[1] != a2 {
		t.Fatalf("expected actors [%d %d], got %v", a1, a2, actors)
	}

	w.ActorProperties(a1).IsPassable = true
	if id := w.HasActorCollision(probe); id != a2 {
		t.Fatalf("expected passable actor skipped, got %d", id)
	}
	w.WallProperties(1).IsPassable = true
	if id := w.HasWallCollision(probe); id != 2 {
		t.Fatalf("expected passable wall skipped, got %d", id)
	}
}
