package scoreboard

import (
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"k8s.io/klog/v2"
)

// ConfirmKind is a destructive action waiting for confirmation.
type ConfirmKind int

const (
	ConfirmDelete      ConfirmKind = iota // Delete one history record.
	ConfirmClearAll                       // Delete the whole history and reset the round.
	ConfirmResetLevels                    // Reset both levels to the first card.
)

// MessageKey returns the i18n key of the question asked to the user.
func (k ConfirmKind) MessageKey() string {
	switch k {
	case ConfirmDelete:
		return "confirmDelete"
	case ConfirmClearAll:
		return "confirmClearHistory"
	}
	return "confirmResetLevel"
}

// Confirmation is a pending destructive action.
type Confirmation struct {
	Kind     ConfirmKind
	RecordID string // For ConfirmDelete.
}

// RequestDelete asks for confirmation before deleting the record id.
func (b *Board) RequestDelete(id string) {
	b.request(Confirmation{Kind: ConfirmDelete, RecordID: id})
}

// RequestClearAll asks for confirmation before clearing the history.
func (b *Board) RequestClearAll() {
	b.request(Confirmation{Kind: ConfirmClearAll})
}

// RequestResetLevels asks for confirmation before resetting both levels.
func (b *Board) RequestResetLevels() {
	b.request(Confirmation{Kind: ConfirmResetLevels})
}

func (b *Board) request(c Confirmation) {
	b.mu.Lock()
	b.pending = &c
	b.mu.Unlock()
	b.notify()
}

// Pending returns the action waiting for confirmation, if any.
func (b *Board) Pending() (Confirmation, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return Confirmation{}, false
	}
	return *b.pending, true
}

// Confirm carries out the pending action. It returns the action, or false
// if nothing was pending.
func (b *Board) Confirm() (Confirmation, bool) {
	b.mu.Lock()
	if b.pending == nil {
		b.mu.Unlock()
		return Confirmation{}, false
	}
	c := *b.pending
	b.pending = nil
	switch c.Kind {
	case ConfirmDelete:
		b.ledger = b.ledger.Delete(c.RecordID)
		b.invalidate()
	case ConfirmClearAll:
		b.ledger = game.Ledger{}
		b.round = game.FirstRound
		b.invalidate()
	case ConfirmResetLevels:
		b.levels = b.levels.Reset()
	}
	b.mu.Unlock()
	klog.V(1).Infof("Board.Confirm: %+v", c)
	b.commit()
	return c, true
}

// Cancel drops the pending action.
func (b *Board) Cancel() {
	b.mu.Lock()
	b.pending = nil
	b.mu.Unlock()
	b.notify()
}
