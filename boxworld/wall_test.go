package boxworld

import "testing"

func TestMoveWallPushesActor(t *testing.T) {
	cases := []struct {
		name  string
		wall  Box
		actor Box
		move  Vec2
		want  IVec2
	}{
		{"push_right", NewBox(0, 0, 4, 4), NewBox(5, 0, 4, 4), Vec2{X: 3}, IVec2{7, 0}},
		{"push_left", NewBox(10, 0, 4, 4), NewBox(5, 0, 4, 4), Vec2{X: -3}, IVec2{3, 0}},
		{"push_down", NewBox(0, 0, 8, 4), NewBox(2, 5, 4, 4), Vec2{Y: 4}, IVec2{2, 8}},
		{"push_up", NewBox(0, 10, 8, 4), NewBox(2, 5, 4, 4), Vec2{Y: -2}, IVec2{2, 4}},
		{"no_contact", NewBox(0, 0, 4, 4), NewBox(20, 0, 4, 4), Vec2{X: 3}, IVec2{20, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			wall := w.AppendWall(c.wall, SideNone)
			id := w.AppendActor(c.actor, SideNone)

			squished := w.MoveWall(wall, c.move)
			if len(squished) != 0 {
				t.Fatalf("expected no squish, got %v", squished)
			}
			if got := w.Actor(id).Position; got != c.want {
				t.Fatalf("expected actor at %v, got %v", c.want, got)
			}
			if w.Actor(id).HasIntersection(*w.Wall(wall)) {
				t.Fatalf("expected actor clear of wall, actor %s wall %s", w.Actor(id), w.Wall(wall))
			}
			if w.WallProperties(wall).IsPassable {
				t.Fatalf("expected wall passable flag restored")
			}
		})
	}
}

func TestMoveWallSquish(t *testing.T) {
	w := NewWorld()
	mover := w.AppendWall(NewBox(0, 0, 4, 4), SideNone)
	w.AppendWall(NewBox(8, 0, 4, 4), SideNone)
	id := w.AppendActor(NewBox(4, 0, 4, 4), SideNone)

	squished := w.MoveWallX(mover, 2)
	if len(squished) != 1 || squished[0] != id {
		t.Fatalf("expected actor %d squished, got %v", id, squished)
	}
	if got := w.Actor(id).Position.X; got != 4 {
		t.Fatalf("expected squished actor to stay at x=4, got %d", got)
	}
	if got := w.Wall(mover).Position.X; got != 2 {
		t.Fatalf("expected wall to move regardless, got x=%d", got)
	}

	// the buffer is refilled, not appended to
	if got := w.MoveWallY(mover, -10); len(got) != 0 {
		t.Fatalf("expected empty squish list, got %v", got)
	}
}

func TestMoveWallSquishOrder(t *testing.T) {
	w := NewWorld()
	floor := w.AppendWall(NewBox(0, 20, 40, 4), SideNone)
	press := w.AppendWall(NewBox(0, 0, 40, 4), SideNone)
	a := w.AppendActor(NewBox(20, 4, 4, 16), SideNone)
	b := w.AppendActor(NewBox(2, 4, 4, 16), SideNone)
	free := w.AppendActor(NewBox(30, 8, 4, 4), SideNone)
	_ = floor

	squished := w.MoveWallY(press, 3)
	if len(squished) != 2 || squished[0] != a || squished[1] != b {
		t.Fatalf("expected [%d %d] in storage order, got %v", a, b, squished)
	}
	if got := w.Actor(free).Position.Y; got != 8 {
		t.Fatalf("expected actor below the press untouched, got y=%d", got)
	}
}

func TestMoveWallCarriesRider(t *testing.T) {
	w := NewWorld()
	platform := w.AppendWall(NewBox(0, 10, 20, 4), SideNone)
	rider := w.AppendActor(NewBox(5, 2, 4, 8), SideTop)
	bystander := w.AppendActor(NewBox(12, 2, 4, 8), SideNone)

	if got := w.MoveWallX(platform, 3); len(got) != 0 {
		t.Fatalf("expected no squish while carrying, got %v", got)
	}
	if !w.ActorProperties(rider).IsRiding {
		t.Fatalf("expected rider marked riding")
	}
	if w.ActorProperties(bystander).IsRiding {
		t.Fatalf("expected actor without ride side not riding")
	}
	if got := w.Actor(rider).Position; got != (IVec2{8, 2}) {
		t.Fatalf("expected rider carried to (8,2), got %v", got)
	}
	if got := w.Actor(bystander).Position; got != (IVec2{12, 2}) {
		t.Fatalf("expected bystander left behind, got %v", got)
	}

	w.MoveWallY(platform, 5)
	if got := w.Actor(rider).Position; got != (IVec2{8, 7}) {
		t.Fatalf("expected rider carried down to (8,7), got %v", got)
	}

	w.MoveWall(platform, Vec2{X: -2, Y: -3})
	if got := w.Actor(rider).Position; got != (IVec2{6, 4}) {
		t.Fatalf("expected rider at (6,4), got %v", got)
	}
	if w.Actor(rider).Bottom() != w.Wall(platform).Position.Y {
		t.Fatalf("expected rider to stay on the platform surface")
	}
}

func TestMoveWallRideSides(t *testing.T) {
	cases := []struct {
		name  string
		side  RideSide
		actor Box
	}{
		// wall is (10, 10, 10, 10)
		{"top", SideTop, NewBox(12, 6, 4, 4)},
		{"bottom", SideBottom, NewBox(12, 20, 4, 4)},
		{"left", SideLeft, NewBox(6, 12, 4, 4)},
		{"right", SideRight, NewBox(20, 12, 4, 4)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			wall := w.AppendWall(NewBox(10, 10, 10, 10), SideNone)
			id := w.AppendActor(c.actor, c.side)

			// move along the contact surface so the rider is only carried
			move := Vec2{Y: 40}
			if c.side == SideTop || c.side == SideBottom {
				move = Vec2{X: 40}
			}
			w.MoveWall(wall, move)

			if !w.ActorProperties(id).IsRiding {
				t.Fatalf("expected actor riding on its %s side", c.side)
			}
			want := c.actor.Position.Add(RoundVec(move))
			if got := w.Actor(id).Position; got != want {
				t.Fatalf("expected actor carried to %v, got %v", want, got)
			}
		})
	}
}

func TestMoveWallRidingResetsWhenApart(t *testing.T) {
	w := NewWorld()
	wall := w.AppendWall(NewBox(0, 10, 20, 4), SideNone)
	id := w.AppendActor(NewBox(5, 2, 4, 8), SideTop)

	w.MoveWallX(wall, 1)
	if !w.ActorProperties(id).IsRiding {
		t.Fatalf("expected riding")
	}
	w.MoveActorY(id, -5)
	w.MoveWallX(wall, 1)
	if w.ActorProperties(id).IsRiding {
		t.Fatalf("expected riding cleared once the actor left the wall")
	}
	if got := w.Actor(id).Position.X; got != 6 {
		t.Fatalf("expected actor carried only once, got x=%d", got)
	}
}

func TestMoveWallSkipsPassableActors(t *testing.T) {
	w := NewWorld()
	wall := w.AppendWall(NewBox(0, 0, 4, 4), SideNone)
	id := w.AppendActor(NewBox(5, 0, 4, 4), SideNone)
	w.ActorProperties(id).IsPassable = true

	w.MoveWallX(wall, 3)
	if got := w.Actor(id).Position.X; got != 5 {
		t.Fatalf("expected passable actor untouched, got x=%d", got)
	}
}

func TestMoveWallRemainder(t *testing.T) {
	w := NewWorld()
	wall := w.AppendWall(NewBox(0, 0, 4, 4), SideNone)
	id := w.AppendActor(NewBox(0, -8, 4, 8), SideTop)

	w.MoveWallX(wall, 0.3)
	if got := w.Wall(wall).Position.X; got != 0 {
		t.Fatalf("expected no move after 0.3, got x=%d", got)
	}
	if w.ActorProperties(id).IsRiding {
		t.Fatalf("expected ride detection skipped when the wall does not move")
	}
	w.MoveWallX(wall, 0.3)
	if got := w.Wall(wall).Position.X; got != 1 {
		t.Fatalf("expected x=1 after 0.6, got %d", got)
	}
	if got := w.Actor(id).Position.X; got != 1 {
		t.Fatalf("expected rider carried by the whole pixel, got x=%d", got)
	}
	if r := w.WallProperties(wall).Remainder.X; !nearly(r, -0.4) {
		t.Fatalf("expected remainder -0.4, got %v", r)
	}
}

func TestMoveWallOneWayPanics(t *testing.T) {
	w := NewWorld()
	wall := w.AppendWall(NewBox(0, 0, 4, 4), SideTop)
	expectPanic(t, ErrOneWayMovingWall, func() { w.MoveWallX(wall, 1) })
}

func TestMoveWallTo(t *testing.T) {
	w := NewWorld()
	wall := w.AppendWall(NewBox(0, 0, 4, 4), SideNone)

	w.MoveWallXTo(wall, 10, 4)
	w.MoveWallYTo(wall, -10, 4)
	if got := w.Wall(wall).Position; got != (IVec2{4, -4}) {
		t.Fatalf("expected (4,-4), got %v", got)
	}

	w.MoveWallTo(wall, Vec2{X: 5.9, Y: -10}, Vec2{X: 4, Y: 20})
	if got := w.Wall(wall).Position; got != (IVec2{5, -10}) {
		t.Fatalf("expected (5,-10), got %v", got)
	}

	w.MoveWallXToWithSlowdown(wall, 45, 0.5, 1)
	if got := w.Wall(wall).Position.X; got != 25 {
		t.Fatalf("expected half way to x=25, got %d", got)
	}
	w.MoveWallYToWithSlowdown(wall, 10, 2, 1)
	if got := w.Wall(wall).Position.Y; got != 10 {
		t.Fatalf("expected snap to y=10, got %d", got)
	}
	w.MoveWallToWithSlowdown(wall, Vec2{X: 25, Y: 0}, Vec2{X: 0.5, Y: 0.5}, 1)
	if got := w.Wall(wall).Position; got != (IVec2{25, 5}) {
		t.Fatalf("expected (25,5), got %v", got)
	}
}
