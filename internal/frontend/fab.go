package frontend

import (
	"fmt"

	"github.com/janpfeifer/TuoLaJi/internal/control"
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Vertical offsets of the menu buttons from the floating control, when the
// menu opens above it and below it.
var (
	menuAbove = []float64{-168, -112, -56}
	menuBelow = []float64{112, 168, 224}
)

// Fab is the floating control: a lock button, a menu button and, when open,
// the menu with language, reset levels and tutorial.
type Fab struct {
	app.Compo
}

func (f *Fab) OnMount(ctx app.Context) {
	State.Listen("fab", func() {
		ctx.Dispatch(func(ctx app.Context) {})
	})
}

func (f *Fab) OnDismount() {
	State.Unlisten("fab")
}

func pointerOf(e app.Event) game.Point {
	return game.Point{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()}
}

// press starts a gesture on target, capturing the pointer so the control
// keeps receiving its events while dragged.
func (f *Fab) press(target control.Target) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		e.Call("stopPropagation")
		ctx.JSSrc().Call("setPointerCapture", e.Get("pointerId"))
		State.Board.Press(target, pointerOf(e))
	}
}

func (f *Fab) onMove(ctx app.Context, e app.Event) {
	State.Board.Move(pointerOf(e))
}

func (f *Fab) onRelease(ctx app.Context, e app.Event) {
	State.Board.Release()
}

func (f *Fab) onBackdrop(ctx app.Context, e app.Event) {
	State.Board.Floating().SetMenu(false)
}

// menuAction closes the menu and runs action.
func (f *Fab) menuAction(name string, action func()) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.Call("stopPropagation")
		klog.V(1).Infof("Fab: menu %s", name)
		State.Board.Floating().SetMenu(false)
		action()
	}
}

func (f *Fab) Render() app.UI {
	b := State.Board
	st := b.Floating().State()

	lockIcon, lockClass := "🔓", "fab-btn fab-lock"
	if st.Locked {
		lockIcon, lockClass = "🔒", "fab-btn fab-lock locked"
	}
	menuIcon, menuClass := "☰", "fab-btn fab-menu"
	if st.MenuOpen {
		menuIcon, menuClass = "✕", "fab-btn fab-menu open"
	}
	if st.Locked {
		menuClass += " disabled"
	}

	buttons := []app.UI{
		app.Button().
			Class(lockClass).
			Title(b.T("lock")).
			On("pointerdown", f.press(control.TargetLock)).
			Text(lockIcon),
		app.Button().
			Class(menuClass).
			Title(b.T("menu")).
			On("pointerdown", f.press(control.TargetMenu)).
			Text(menuIcon),
	}

	if st.MenuOpen {
		offsets := menuBelow
		if st.Pos.Y > b.Viewport().Height/2 {
			offsets = menuAbove
		}
		items := []struct {
			name, icon, title string
			action            func()
		}{
			{"language", "文", b.T("languageTitle"), func() { State.OpenModal(ModalLanguage, "") }},
			{"reset", "↻", b.T("resetLevels"), b.RequestResetLevels},
			{"tutorial", "?", b.T("startTutorial"), b.Tutorial().Start},
		}
		for i, item := range items {
			buttons = append(buttons, app.Button().
				Class("fab-btn fab-item").
				Style("top", px(offsets[i])).
				Title(item.title).
				On("pointerdown", func(ctx app.Context, e app.Event) { e.Call("stopPropagation") }).
				OnClick(f.menuAction(item.name, item.action)).
				Text(item.icon))
		}
	}

	class := "fab"
	if st.Phase == control.PhaseDragging {
		class += " dragging"
	}
	fab := app.Div().
		Class(class).
		Style("left", px(st.Pos.X)).
		Style("top", px(st.Pos.Y)).
		On("pointerdown", f.press(control.TargetHandle)).
		On("pointermove", f.onMove).
		On("pointerup", f.onRelease).
		On("pointercancel", f.onRelease).
		Body(buttons...)

	if !st.MenuOpen {
		return fab
	}
	return app.Div().Body(
		app.Div().Class("menu-backdrop").OnClick(f.onBackdrop),
		fab,
	)
}

func px(v float64) string {
	return fmt.Sprintf("%.0fpx", v)
}
