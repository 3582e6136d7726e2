package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/common"
)

// Camera follows a world point and maps world pixels to the screen.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	// default position at screen center in world coords
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.settle()
}

// Follow tracks the center of box.
func (c *Camera) Follow(box boxworld.Box) {
	center := box.Center()
	c.Update(float64(center.X), float64(center.Y))
}

// SnapTo immediately sets the camera center to the given world coordinates
// with the same rounding and clamping as Update. Use it after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

// settle snaps the position to the 1/zoom grid and clamps it to the world.
func (c *Camera) settle() {
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}

	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	c.PosX = clampAxis(c.PosX, viewW/2.0, c.worldW)
	c.PosY = clampAxis(c.PosY, viewH/2.0, c.worldH)
}

// clampAxis keeps a half-view inside a world extent; a world smaller than
// the view is centered. An extent of 0 means unbounded.
func clampAxis(pos, half, extent float64) float64 {
	if extent <= 0 {
		return pos
	}
	if extent-half < half {
		return extent / 2.0
	}
	return common.Clamp(pos, half, extent-half)
}

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	left, top := c.ViewTopLeft()
	return (x - left) * c.zoom, (y - top) * c.zoom
}

// Render draws the world by first invoking drawWorld with the offscreen image
// (which should be treated as view-space sized to the screen), then draws the
// offscreen image onto the provided screen. The caller should draw with
// camX/camY offsets based on ViewTopLeft().
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	// clear offscreen and let caller draw the world into it
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
