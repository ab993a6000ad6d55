package frontend

import (
	"strconv"
	"time"

	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// clock renders the time of day of an epoch-ms timestamp as HH:MM.
func clock(ms int64) string {
	return time.UnixMilli(ms).Local().Format("15:04")
}

func (h *Home) renderRecord(r game.ScoreRecord) app.UI {
	b := State.Board
	badge, class := b.T("soloBadge"), "record record-solo"
	if r.Type == game.Duo {
		badge, class = b.T("duoBadge"), "record record-duo"
	}

	line := make([]app.UI, 0, len(r.WinnerIDs)+3)
	for _, id := range r.WinnerIDs {
		line = append(line, app.Span().Class("winner "+teamClass(id)).Text(b.Name(id)))
	}
	line = append(line,
		app.Span().Class("won").Text(b.T("won")),
		app.Span().Class("points").Text("+"+strconv.FormatFloat(r.Score, 'f', -1, 64)),
	)
	if r.Remark != "" {
		line = append(line, app.Span().Class("note").Text(b.T("note")+": "+r.Remark))
	}

	return app.Div().Class(class).Body(
		app.Div().Class("record-body").Body(
			app.Div().Class("record-head").Body(
				app.Span().Class("badge").Text(badge),
				app.Small().Text(clock(r.Timestamp)),
			),
			app.Div().Class("record-line").Body(line...),
		),
		app.Button().
			Class("record-delete outline").
			OnClick(func(ctx app.Context, e app.Event) {
				e.Call("stopPropagation")
				b.RequestDelete(r.ID)
			}).
			Text("🗑"),
	)
}

func (h *Home) renderHistory() app.UI {
	b := State.Board
	clearAll := app.Button().
		Class("clear-history outline").
		OnClick(func(ctx app.Context, e app.Event) {
			e.Call("stopPropagation")
			b.RequestClearAll()
		}).
		Text("↻ " + b.T("clearHistory"))

	records := b.History()
	if len(records) == 0 {
		return h.dialog(b.T("historyTitle"), clearAll, app.P().Class("empty").Text(b.T("noHistory")))
	}
	rows := make([]app.UI, 0, len(records))
	for _, r := range records {
		rows = append(rows, h.renderRecord(r))
	}
	return h.dialog(b.T("historyTitle"), clearAll, app.Div().Class("history").Body(rows...))
}
