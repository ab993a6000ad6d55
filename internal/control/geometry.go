// Package control implements the gesture logic of the scoreboard: the
// draggable, lockable floating control, the idle auto-lock and the swipe
// tiles. It has no browser dependency; the frontend feeds it pointer events.
package control

import (
	"math"

	"github.com/janpfeifer/TuoLaJi/internal/game"
)

// Geometry of the floating control, in pixels.
const (
	EdgeInset          = 10.0  // Left and top margin.
	RightOffset        = 58.0  // Snapped right: x = width - RightOffset.
	BottomOffset       = 114.0 // Lowest y = height - BottomOffset.
	ButtonSize         = 48.0
	InitialRightOffset = 60.0
	TapSlop            = 5.0 // Movement below this is still a tap.
)

// Viewport is the size of the visible screen.
type Viewport struct {
	Width, Height float64
}

// Snap moves p to the nearest horizontal edge, judged by the control's
// center, and clamps its vertical coordinate.
func Snap(p game.Point, vp Viewport) game.Point {
	x := EdgeInset
	if p.X+ButtonSize/2 >= vp.Width/2 {
		x = vp.Width - RightOffset
	}
	return game.Point{X: x, Y: clampY(p.Y, vp)}
}

// Clamp keeps p inside the area the control may occupy, without snapping.
func Clamp(p game.Point, vp Viewport) game.Point {
	return game.Point{
		X: math.Min(math.Max(EdgeInset, p.X), vp.Width-RightOffset),
		Y: clampY(p.Y, vp),
	}
}

func clampY(y float64, vp Viewport) float64 {
	return math.Max(EdgeInset, math.Min(vp.Height-BottomOffset, y))
}

// InitialPosition is where the control starts when nothing was persisted:
// the right edge, half-way down.
func InitialPosition(vp Viewport) game.Point {
	return game.Point{X: vp.Width - InitialRightOffset, Y: vp.Height / 2}
}

// Restore turns a persisted position into a usable one.
func Restore(saved *game.Point, vp Viewport) game.Point {
	if saved == nil || !finite(saved.X) || !finite(saved.Y) {
		return InitialPosition(vp)
	}
	return Clamp(*saved, vp)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func distance(a, b game.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
