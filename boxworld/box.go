package boxworld

import (
	"image"
	"math"
	"strconv"

	"github.com/jakecoffman/cp"
)

// Vec2 is a float vector used for remainders, directions and velocities.
type Vec2 = cp.Vector

// IVec2 is an integer vector in pixel units.
type IVec2 struct {
	X, Y int
}

func (v IVec2) Add(o IVec2) IVec2 {
	return IVec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v IVec2) Vec2() Vec2 {
	return Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// RoundVec rounds each component half away from zero.
func RoundVec(v Vec2) IVec2 {
	return IVec2{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Box is an axis-aligned rectangle in pixel units. Position is the top-left corner.
type Box struct {
	Position IVec2
	Size     IVec2
}

func NewBox(x, y, w, h int) Box {
	return Box{Position: IVec2{X: x, Y: y}, Size: IVec2{X: w, Y: h}}
}

func (b Box) Right() int  { return b.Position.X + b.Size.X }
func (b Box) Bottom() int { return b.Position.Y + b.Size.Y }

func (b Box) Center() IVec2 {
	return IVec2{X: b.Position.X + b.Size.X/2, Y: b.Position.Y + b.Size.Y/2}
}

func (b Box) Area() int {
	return b.Size.X * b.Size.Y
}

// HasPoint reports whether p lies strictly inside b. Points on the edge are outside.
func (b Box) HasPoint(p IVec2) bool {
	return p.X > b.Position.X && p.X < b.Right() &&
		p.Y > b.Position.Y && p.Y < b.Bottom()
}

// HasIntersection reports whether b and other overlap on both axes.
// Boxes that only share an edge do not intersect.
func (b Box) HasIntersection(other Box) bool {
	return b.Position.X < other.Right() &&
		b.Right() > other.Position.X &&
		b.Position.Y < other.Bottom() &&
		b.Bottom() > other.Position.Y
}

// Translate returns a copy of b moved by d.
func (b Box) Translate(d IVec2) Box {
	b.Position = b.Position.Add(d)
	return b
}

// Rect converts b into an image.Rectangle for drawing.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.Position.X, b.Position.Y, b.Right(), b.Bottom())
}

// AppendText appends "(x, y, w, h)" to dst.
func (b Box) AppendText(dst []byte) []byte {
	dst = append(dst, '(')
	dst = strconv.AppendInt(dst, int64(b.Position.X), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(b.Position.Y), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(b.Size.X), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(b.Size.Y), 10)
	return append(dst, ')')
}

func (b Box) String() string {
	var buf [64]byte
	return string(b.AppendText(buf[:0]))
}
