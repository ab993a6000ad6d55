package scoreboard

import (
	"maps"

	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/janpfeifer/TuoLaJi/internal/i18n"
)

// Lang returns the display language.
func (b *Board) Lang() i18n.Lang {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lang
}

// T translates key in the display language.
func (b *Board) T(key string, params ...map[string]string) string {
	return b.Lang().T(key, params...)
}

// Levels returns both team levels.
func (b *Board) Levels() game.Levels {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels
}

// Round returns the round counter.
func (b *Board) Round() game.Round {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.round
}

// Name returns the display name of p.
func (b *Board) Name(p game.PlayerID) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.names.Name(p)
}

// History returns the ledger, newest record first.
func (b *Board) History() []game.ScoreRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.Reversed()
}

// Totals returns the cumulative score of every player.
func (b *Board) Totals() map[game.PlayerID]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.totals == nil {
		b.totals = b.ledger.Totals()
	}
	return maps.Clone(b.totals)
}

// Remarks returns, for every player, the remarks of the events they won.
func (b *Board) Remarks() map[game.PlayerID]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.remarks == nil {
		b.remarks = b.ledger.Remarks()
	}
	return maps.Clone(b.remarks)
}

// invalidate drops memoized derived state. b.mu must be held.
func (b *Board) invalidate() {
	b.totals = nil
	b.remarks = nil
}
