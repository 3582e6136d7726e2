package common

import "math"

const (
	BaseWidth  = 640
	BaseHeight = 360
)

// floatEpsilon is the tolerance used when comparing positions for equality.
const floatEpsilon = 0.0001

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SignInt returns -1, 0 or 1.
func SignInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// MoveTo steps from toward to by at most |delta|, snapping to `to` once it is
// within reach.
func MoveTo(from, to, delta float64) float64 {
	if math.Abs(to-from) > math.Abs(delta) {
		return from + Sign(to-from)*math.Abs(delta)
	}
	return to
}

// MoveToWithSlowdown approaches `to` asymptotically. Each call covers
// delta/slowdown of the remaining distance, so the step shrinks as from nears
// to. A non-positive slowdown snaps.
func MoveToWithSlowdown(from, to, delta, slowdown float64) float64 {
	if math.Abs(to-from) < floatEpsilon || slowdown <= 0 {
		return to
	}
	t := math.Abs(delta) / slowdown
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
