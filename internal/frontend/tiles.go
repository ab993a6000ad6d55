package frontend

import (
	"github.com/janpfeifer/TuoLaJi/internal/control"
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// TileKind selects what a SwipeTile changes.
type TileKind int

const (
	TileRedLevel TileKind = iota
	TileRound
	TileBlueLevel
)

// SwipeTile is one of the three counters at the top of the board. A vertical
// swipe or a tap on its top or bottom quarter steps it down or up.
type SwipeTile struct {
	app.Compo
	Kind  TileKind
	Label string
	Value string

	startY   float64
	touching bool
}

func (t *SwipeTile) shift(delta int) {
	if delta == 0 {
		return
	}
	klog.V(1).Infof("SwipeTile %d: shift %+d", t.Kind, delta)
	b := State.Board
	switch t.Kind {
	case TileRedLevel:
		b.ShiftLevel(game.Left, delta)
	case TileBlueLevel:
		b.ShiftLevel(game.Right, delta)
	case TileRound:
		b.ShiftRound(delta)
	}
}

func (t *SwipeTile) onTouchStart(ctx app.Context, e app.Event) {
	touches := e.Get("touches")
	if touches.Length() == 0 {
		return
	}
	t.startY = touches.Index(0).Get("clientY").Float()
	t.touching = true
}

func (t *SwipeTile) onTouchEnd(ctx app.Context, e app.Event) {
	if !t.touching {
		return
	}
	t.touching = false
	touches := e.Get("changedTouches")
	if touches.Length() == 0 {
		return
	}
	t.shift(control.ClassifySwipe(t.startY, touches.Index(0).Get("clientY").Float()))
}

func (t *SwipeTile) onClick(ctx app.Context, e app.Event) {
	rect := ctx.JSSrc().Call("getBoundingClientRect")
	t.shift(control.ClassifyTap(
		e.Get("clientY").Float(),
		rect.Get("top").Float(),
		rect.Get("height").Float(),
	))
}

func (t *SwipeTile) Render() app.UI {
	class := "tile"
	switch t.Kind {
	case TileRedLevel:
		class += " tile-red"
	case TileBlueLevel:
		class += " tile-blue"
	default:
		class += " tile-round"
	}
	return app.Div().
		Class(class).
		On("touchstart", t.onTouchStart).
		On("touchend", t.onTouchEnd).
		OnClick(t.onClick).
		On("contextmenu", func(ctx app.Context, e app.Event) { e.PreventDefault() }).
		Body(
			app.Span().Class("tile-chevron tile-up").Text("▲"),
			app.Div().Class("tile-label").Text(t.Label),
			app.Div().Class("tile-value").Text(t.Value),
			app.Span().Class("tile-chevron tile-down").Text("▼"),
		)
}
