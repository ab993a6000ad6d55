package frontend

import (
	"strconv"

	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Events anywhere in the document that count as user activity.
var activityEvents = []string{
	"click", "keydown",
	"pointerdown", "pointermove", "pointerup",
	"mousemove",
	"touchstart", "touchmove", "touchend",
}

// Window events that change the viewport.
var resizeEvents = []string{"resize", "orientationchange"}

// Home is the scoreboard screen.
type Home struct {
	app.Compo

	form     scoreForm
	nameEdit string

	onActivity app.Func
	onResize   app.Func
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
	State.Listen("home", func() {
		ctx.Dispatch(func(ctx app.Context) {})
	})

	if app.IsServer {
		return
	}
	b := State.Board
	if !b.Loaded() {
		b.Load(Locale(), Viewport())
		b.Start()
	}

	h.onActivity = app.FuncOf(func(this app.Value, args []app.Value) any {
		State.Board.Touch()
		return nil
	})
	for _, ev := range activityEvents {
		app.Window().Call("addEventListener", ev, h.onActivity)
	}
	h.onResize = app.FuncOf(func(this app.Value, args []app.Value) any {
		State.Board.Resize(Viewport())
		return nil
	})
	for _, ev := range resizeEvents {
		app.Window().Call("addEventListener", ev, h.onResize)
	}
}

func (h *Home) OnDismount() {
	klog.V(1).Infof("Home: OnDismount called")
	State.Unlisten("home")
	if app.IsServer {
		return
	}
	for _, ev := range activityEvents {
		app.Window().Call("removeEventListener", ev, h.onActivity)
	}
	for _, ev := range resizeEvents {
		app.Window().Call("removeEventListener", ev, h.onResize)
	}
	h.onActivity.Release()
	h.onResize.Release()
	State.ResetBoard()
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	klog.Infof("Home component: App update available, reloading...")
	ctx.Reload()
}

func (h *Home) closeModal(ctx app.Context, e app.Event) {
	h.form = scoreForm{}
	h.nameEdit = ""
	State.OpenModal(ModalNone, "")
}

func (h *Home) Render() app.UI {
	b := State.Board
	levels := b.Levels()

	body := []app.UI{
		app.Div().Class("top-row").Body(
			&SwipeTile{Kind: TileRedLevel, Label: b.T("redLevel"), Value: levels.Card(game.Left)},
			&SwipeTile{Kind: TileRound, Label: b.T("round"), Value: strconv.Itoa(int(b.Round()))},
			&SwipeTile{Kind: TileBlueLevel, Label: b.T("blueLevel"), Value: levels.Card(game.Right)},
		),
		h.renderSeats(),
		&Fab{},
	}

	fab := b.Floating().State()
	if fab.Locked {
		body = append(body, app.Div().
			Class("lock-overlay").
			On("click", swallow).
			On("touchstart", swallow))
	}
	if c, ok := b.Pending(); ok {
		body = append(body, h.renderConfirm(c))
	}
	if modal := h.renderModal(); modal != nil {
		body = append(body, modal)
	}
	if step, ok := b.Tutorial().Current(); ok {
		body = append(body, h.renderTutorial(step))
	}

	return app.Div().Class("board").Body(body...)
}

// swallow stops an event from reaching the board.
func swallow(ctx app.Context, e app.Event) {
	e.PreventDefault()
	e.Call("stopPropagation")
}
