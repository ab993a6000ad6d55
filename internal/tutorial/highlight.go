package tutorial

import (
	"github.com/janpfeifer/TuoLaJi/internal/control"
	"github.com/janpfeifer/TuoLaJi/internal/game"
)

// Offsets of the menu buttons from the floating control's origin. The menu
// opens upwards when the control is in the lower half of the screen.
const (
	langAbove  = 168
	langBelow  = 112
	resetAbove = 112
	resetBelow = 168
	remPx      = 16
)

// Rect is a highlighted region in screen pixels.
type Rect struct {
	Left, Top, Width, Height float64
	Round                    bool // Drawn as a circle or pill rather than a rounded box.
}

// Highlight returns the region highlighted for target, given the floating
// control position fab and the viewport.
func Highlight(target Target, fab game.Point, vp control.Viewport) Rect {
	third := vp.Width / 3
	switch target {
	case TargetFab:
		return Rect{Left: fab.X - 10, Top: fab.Y - 10, Width: 72, Height: 120, Round: true}
	case TargetLock:
		return button(fab.X, fab.Y)
	case TargetLang:
		if menuAbove(fab, vp) {
			return button(fab.X, fab.Y-langAbove)
		}
		return button(fab.X, fab.Y+langBelow)
	case TargetReset:
		if menuAbove(fab, vp) {
			return button(fab.X, fab.Y-resetAbove)
		}
		return button(fab.X, fab.Y+resetBelow)
	case TargetLevels:
		return Rect{Left: 0.75 * remPx, Top: remPx, Width: vp.Width - 1.5*remPx, Height: 0.4 * vp.Height}
	case TargetRound:
		return Rect{Left: third, Top: remPx, Width: third, Height: 0.4 * vp.Height}
	case TargetPlayers:
		top := 0.4*vp.Height + remPx
		return Rect{Left: third, Top: top, Width: third, Height: vp.Height - 2*remPx - top}
	case TargetHistory:
		return Rect{Left: third + remPx/2, Top: 0.6*vp.Height + remPx/2, Width: third - remPx, Height: 0.2*vp.Height - remPx}
	}
	return Rect{}
}

func button(x, y float64) Rect {
	return Rect{Left: x, Top: y, Width: control.ButtonSize, Height: control.ButtonSize, Round: true}
}

func menuAbove(fab game.Point, vp control.Viewport) bool {
	return fab.Y > vp.Height/2
}
