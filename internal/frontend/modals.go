package frontend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/janpfeifer/TuoLaJi/internal/i18n"
	"github.com/janpfeifer/TuoLaJi/internal/scoreboard"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// scoreForm is the content of the score dialog while it is being edited.
type scoreForm struct {
	points string
	remark string
	err    string
}

// parseScore turns the score dialog input into a validated request.
func parseScore(mode game.Mode, initiator game.PlayerID, points, remark string) (game.ScoreRequest, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(points), 64)
	if err != nil {
		return game.ScoreRequest{}, fmt.Errorf("%w: %q", game.ErrInvalidPoints, points)
	}
	req := game.ScoreRequest{Mode: mode, Initiator: initiator, Points: v, Remark: remark}
	if err := game.ValidateScore(req); err != nil {
		return game.ScoreRequest{}, err
	}
	return req, nil
}

func stopPropagation(ctx app.Context, e app.Event) {
	e.Call("stopPropagation")
}

// dialog wraps body in a modal card; clicking outside the card closes it.
func (h *Home) dialog(title string, headerAction app.UI, body ...app.UI) app.UI {
	header := []app.UI{app.H3().Text(title)}
	if headerAction != nil {
		header = append(header, headerAction)
	}
	header = append(header, app.Button().Class("modal-close outline secondary").OnClick(h.closeModal).Text("✕"))
	return app.Div().Class("modal-backdrop").OnClick(h.closeModal).Body(
		app.Article().Class("modal").OnClick(stopPropagation).Body(
			app.Header().Class("modal-header").Body(header...),
			app.Div().Class("modal-body").Body(body...),
		),
	)
}

func (h *Home) renderModal() app.UI {
	switch State.Modal {
	case ModalAction:
		return h.renderAction(State.Selected)
	case ModalScore:
		return h.renderScore(State.ScoreMode, State.Selected)
	case ModalName:
		return h.renderName(State.Selected)
	case ModalHistory:
		return h.renderHistory()
	case ModalLanguage:
		return h.renderLanguage()
	}
	return nil
}

func (h *Home) renderAction(p game.PlayerID) app.UI {
	b := State.Board
	name := b.Name(p)
	score := func(mode game.Mode) app.EventHandler {
		return func(ctx app.Context, e app.Event) {
			h.form = scoreForm{}
			State.ScoreMode = mode
			State.OpenModal(ModalScore, p)
		}
	}
	return h.dialog(b.T("actionTitle", map[string]string{"name": name}), nil,
		app.Div().Class("action-list").Body(
			app.Button().Class("secondary").OnClick(func(ctx app.Context, e app.Event) {
				h.nameEdit = name
				State.OpenModal(ModalName, p)
			}).Text("✎ "+b.T("editName")),
			app.Button().Class("action-solo").OnClick(score(game.Solo)).Text(b.T("soloScore")),
			app.Button().Class("action-duo").OnClick(score(game.Duo)).Text(b.T("duoScore")),
		),
	)
}

func (h *Home) renderScore(mode game.Mode, p game.PlayerID) app.UI {
	b := State.Board
	title := b.T("soloTitle", map[string]string{"name": b.Name(p)})
	if mode == game.Duo {
		partner, _ := game.Teammate(p)
		title = b.T("duoTitle", map[string]string{"name": b.Name(p), "partner": b.Name(partner)})
	}

	presets := make([]app.UI, 0, len(game.PresetsFor(mode)))
	for _, preset := range game.PresetsFor(mode) {
		presets = append(presets, app.Button().
			Class("preset secondary").
			OnClick(func(ctx app.Context, e app.Event) {
				h.form.points = strconv.FormatFloat(preset.Points, 'f', -1, 64)
				h.form.remark = preset.Remark
				h.form.err = ""
			}).
			Text(preset.Label))
	}

	_, invalid := parseScore(mode, p, h.form.points, h.form.remark)
	body := []app.UI{
		app.Label().Text(b.T("scoreValue")),
		app.Div().Class("presets").Body(presets...),
		app.Input().
			Type("number").
			Class("score-input").
			Placeholder(b.T("enterScore")).
			Value(h.form.points).
			AutoFocus(true).
			OnInput(func(ctx app.Context, e app.Event) {
				h.form.points = ctx.JSSrc().Get("value").String()
			}),
		app.Label().Text(b.T("remarkLabel")),
		app.Input().
			Type("text").
			Placeholder(b.T("defaultRemark")).
			Value(h.form.remark).
			OnInput(func(ctx app.Context, e app.Event) {
				h.form.remark = ctx.JSSrc().Get("value").String()
			}),
	}
	if h.form.err != "" {
		body = append(body, app.Small().Class("error").Text(h.form.err))
	}
	body = append(body, app.Button().
		Class("confirm-score").
		Disabled(invalid != nil).
		OnClick(func(ctx app.Context, e app.Event) { h.onAddScore(ctx, mode, p) }).
		Text(b.T("confirmScore")))
	return h.dialog(title, nil, body...)
}

func (h *Home) onAddScore(ctx app.Context, mode game.Mode, p game.PlayerID) {
	req, err := parseScore(mode, p, h.form.points, h.form.remark)
	if err == nil {
		_, err = State.Board.AddScore(req)
	}
	if err != nil {
		klog.Warningf("Home: score not added: %v", err)
		h.form.err = err.Error()
		return
	}
	h.closeModal(ctx, app.Event{})
}

func (h *Home) renderName(p game.PlayerID) app.UI {
	b := State.Board
	save := func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		if !b.Rename(p, h.nameEdit) {
			klog.V(1).Infof("Home: blank name for %s ignored", p)
		}
		h.closeModal(ctx, e)
	}
	return h.dialog(b.T("editNameTitle", map[string]string{"name": b.Name(p)}), nil,
		app.Form().OnSubmit(save).Body(
			app.Input().
				Type("text").
				Class("name-input").
				Value(h.nameEdit).
				AutoFocus(true).
				OnInput(func(ctx app.Context, e app.Event) {
					h.nameEdit = ctx.JSSrc().Get("value").String()
				}),
			app.Button().Type("submit").Text(b.T("save")),
		),
	)
}

func (h *Home) renderLanguage() app.UI {
	b := State.Board
	current := b.Lang()
	options := make([]app.UI, 0, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		class := "language secondary outline"
		if lang == current {
			class = "language"
		}
		options = append(options, app.Button().
			Class(class).
			OnClick(func(ctx app.Context, e app.Event) {
				b.SetLanguage(lang)
				h.closeModal(ctx, e)
			}).
			Text(lang.Name()))
	}
	return h.dialog(b.T("settings"), nil, app.Div().Class("language-list").Body(options...))
}

func (h *Home) renderConfirm(c scoreboard.Confirmation) app.UI {
	b := State.Board
	cancel := func(ctx app.Context, e app.Event) {
		e.Call("stopPropagation")
		b.Cancel()
	}
	return app.Div().Class("modal-backdrop confirm-backdrop").OnClick(cancel).Body(
		app.Article().Class("modal confirm").OnClick(stopPropagation).Body(
			app.P().Text("⚠ "+b.T(c.Kind.MessageKey())),
			app.Footer().Body(
				app.Button().Class("secondary").OnClick(cancel).Text(b.T("cancel")),
				app.Button().Class("danger").OnClick(func(ctx app.Context, e app.Event) {
					e.Call("stopPropagation")
					done, _ := b.Confirm()
					if done.Kind == scoreboard.ConfirmClearAll {
						h.closeModal(ctx, e)
					}
				}).Text(b.T("confirm")),
			),
		),
	)
}
