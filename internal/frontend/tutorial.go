package frontend

import (
	"github.com/janpfeifer/TuoLaJi/internal/tutorial"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

func (h *Home) renderTutorial(step tutorial.Step) app.UI {
	b := State.Board
	q := b.Tutorial()
	rect := tutorial.Highlight(step.Target, b.Floating().State().Pos, b.Viewport())

	highlight := app.Div().
		Class("tutorial-highlight").
		Style("left", px(rect.Left)).
		Style("top", px(rect.Top)).
		Style("width", px(rect.Width)).
		Style("height", px(rect.Height))
	if rect.Round {
		highlight = highlight.Style("border-radius", "36px")
	}

	cardClass := "tutorial-card bottom"
	if step.CardOnTop {
		cardClass = "tutorial-card top"
	}
	nextText := b.T("tutorialNext")
	if q.IsLast() {
		nextText = b.T("confirm")
	}

	dots := make([]app.UI, 0, len(tutorial.Steps))
	for i := range tutorial.Steps {
		class := "dot"
		if i == q.Step() {
			class = "dot current"
		}
		dots = append(dots, app.Span().Class(class))
	}

	return app.Div().Class("tutorial").Body(
		app.Div().Class("tutorial-mask").OnClick(func(ctx app.Context, e app.Event) { q.Close() }),
		highlight,
		app.Article().Class(cardClass).Body(
			app.Header().Class("modal-header").Body(
				app.H3().Text(b.T(step.TitleKey)),
				app.Button().
					Class("outline secondary").
					Title(b.T("languageTitle")).
					OnClick(func(ctx app.Context, e app.Event) { State.OpenModal(ModalLanguage, "") }).
					Text("文"),
			),
			app.P().Text(b.T(step.DescKey)),
			app.Footer().Body(
				app.Button().Class("secondary").OnClick(func(ctx app.Context, e app.Event) { q.Close() }).Text(b.T("tutorialSkip")),
				app.Button().OnClick(func(ctx app.Context, e app.Event) { q.Next() }).Text(nextText),
			),
			app.Div().Class("dots").Body(dots...),
		),
	)
}
