package frontend

import (
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// teamClass is the CSS class coloring an element by the player's team.
func teamClass(p game.PlayerID) string {
	if game.TeamOf(p) == game.Red {
		return "team-red"
	}
	return "team-blue"
}

// signedScore renders a total with an explicit plus sign when positive.
func signedScore(v float64) string {
	s := game.FormatScore(v)
	if s != "0" && s[0] != '-' {
		return "+" + s
	}
	return s
}

func (h *Home) renderPlayer(p game.PlayerID, total float64) app.UI {
	b := State.Board
	return app.Button().
		Class("player "+teamClass(p)).
		Style("grid-area", game.Seats[p].Position).
		OnClick(func(ctx app.Context, e app.Event) {
			State.OpenModal(ModalAction, p)
		}).
		Body(
			app.Div().Class("player-name").Text(b.Name(p)),
			app.Div().Class("player-score").Text(signedScore(total)),
		)
}

// renderRemarks is the center of the board: the remarks of each player,
// laid out like the seats. Tapping it opens the history.
func (h *Home) renderRemarks() app.UI {
	remarks := State.Board.Remarks()
	empty := true
	cells := make([]app.UI, 0, len(game.AllPlayers)+1)
	for _, p := range game.AllPlayers {
		if remarks[p] != "" {
			empty = false
		}
		cells = append(cells, app.Div().
			Class("remark remark-"+game.Seats[p].Position+" "+teamClass(p)).
			Text(remarks[p]))
	}
	if empty {
		cells = append(cells, app.Div().Class("remark-empty").Text(State.Board.T("tapForHistory")))
	}
	return app.Div().
		Class("remarks").
		Style("grid-area", "center").
		OnClick(func(ctx app.Context, e app.Event) {
			State.OpenModal(ModalHistory, "")
		}).
		Body(cells...)
}

func (h *Home) renderSeats() app.UI {
	totals := State.Board.Totals()
	seats := make([]app.UI, 0, len(game.AllPlayers)+1)
	for _, p := range game.AllPlayers {
		seats = append(seats, h.renderPlayer(p, totals[p]))
	}
	seats = append(seats, h.renderRemarks())
	return app.Div().Class("seats").Body(seats...)
}
