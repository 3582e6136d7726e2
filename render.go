package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/obj"
	"github.com/milk9111/boxworld/system"
)

var (
	wallColor     = colornames.Slategray
	oneWayColor   = colornames.Darkseagreen
	platformColor = colornames.Steelblue
	actorColor    = colornames.Goldenrod
	playerColor   = colornames.Crimson
	passableColor = color.RGBA{R: 255, G: 255, B: 255, A: 64}
)

func drawWorld(dst *ebiten.Image, w *system.World, cam *obj.Camera, debug bool) {
	dst.Fill(colornames.Midnightblue)

	for i := range w.Boxes.WallCount() {
		id := boxworld.WallID(i + 1)
		props := w.Boxes.WallProperties(id)
		col := wallColor
		spec := w.Layout.WallSpec(id)
		switch {
		case props.OneWaySide != boxworld.SideNone:
			col = oneWayColor
		case spec.Path != nil || spec.Script != "":
			col = platformColor
		}
		drawBox(dst, cam, *w.Boxes.Wall(id), col)
		if props.OneWaySide != boxworld.SideNone {
			drawEdge(dst, cam, *w.Boxes.Wall(id), props.OneWaySide)
		}
	}

	player := w.Player()
	for i := range w.Boxes.ActorCount() {
		id := boxworld.ActorID(i + 1)
		props := w.Boxes.ActorProperties(id)
		var col color.Color = actorColor
		switch {
		case id == player:
			col = playerColor
		case props.IsPassable:
			col = passableColor
		}
		box := *w.Boxes.Actor(id)
		drawBox(dst, cam, box, col)

		if debug {
			x, y := cam.WorldToScreen(float64(box.Position.X), float64(box.Position.Y))
			label := fmt.Sprintf("%d r=%.1f,%.1f", id, props.Remainder.X, props.Remainder.Y)
			if w.Riding(id) {
				label += " ride"
			}
			ebitenutil.DebugPrintAt(dst, label, int(x), int(y)-16)
		}
	}
}

func drawBox(dst *ebiten.Image, cam *obj.Camera, b boxworld.Box, col color.Color) {
	x, y := cam.WorldToScreen(float64(b.Position.X), float64(b.Position.Y))
	z := cam.Zoom()
	vector.FillRect(dst, float32(x), float32(y), float32(float64(b.Size.X)*z), float32(float64(b.Size.Y)*z), col, false)
}

// drawEdge marks the solid side of a one-way wall.
func drawEdge(dst *ebiten.Image, cam *obj.Camera, b boxworld.Box, side boxworld.Side) {
	x0, y0 := cam.WorldToScreen(float64(b.Position.X), float64(b.Position.Y))
	x1, y1 := cam.WorldToScreen(float64(b.Right()), float64(b.Bottom()))
	switch side {
	case boxworld.SideTop:
		y1 = y0
	case boxworld.SideBottom:
		y0 = y1
	case boxworld.SideLeft:
		x1 = x0
	case boxworld.SideRight:
		x0 = x1
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 2, colornames.Lightgrey, false)
}
