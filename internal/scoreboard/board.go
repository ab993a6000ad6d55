// Package scoreboard holds the Board, the single controller that owns the
// whole state of the scoreboard: ledger, levels, round, player names,
// language, floating control, idle lock and tutorial.
//
// All mutations go through Board methods. Once Load has run, every mutation
// is persisted to the store, and the Changed hook is called so the UI can
// re-render.
package scoreboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/janpfeifer/TuoLaJi/internal/control"
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/janpfeifer/TuoLaJi/internal/i18n"
	"github.com/janpfeifer/TuoLaJi/internal/store"
	"github.com/janpfeifer/TuoLaJi/internal/tutorial"
	"k8s.io/klog/v2"
)

// Options configures a Board.
type Options struct {
	Store store.Store

	// Changed is called after every visible change. It may be called from
	// timer goroutines.
	Changed func()

	// Haptic triggers a short vibration, if the device supports it.
	Haptic func()

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Board is the scoreboard controller.
type Board struct {
	opts Options

	mu      sync.Mutex
	loaded  bool
	raw     []byte // Last blob read from or written to the store.
	lang    i18n.Lang
	levels  game.Levels
	round   game.Round
	names   game.Directory
	ledger  game.Ledger
	pending *Confirmation
	vp      control.Viewport

	// Memoized derived state, invalidated whenever the ledger changes.
	totals  map[game.PlayerID]float64
	remarks map[game.PlayerID]string

	floating *control.Floating
	idle     *control.IdleLock
	tutorial *tutorial.Sequencer
}

// New creates a Board with default state. Nothing is persisted until Load
// is called.
func New(opts Options) *Board {
	if opts.Store == nil {
		opts.Store = store.NewMemory()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	b := &Board{
		opts:   opts,
		lang:   i18n.Default,
		round:  game.FirstRound,
		names:  game.DefaultDirectory(i18n.Default.Translator()),
		ledger: game.Ledger{},
	}
	b.floating = control.NewFloating(game.Point{}, control.FloatingHooks{
		Changed: b.notify,
		Moved:   func(game.Point) { b.persist() },
		Unlock:  b.haptic,
	})
	b.idle = control.NewIdleLock(func() { b.floating.Lock() })
	b.tutorial = tutorial.New(opts.Store, b.onTutorialStep)
	return b
}

// Load reads the persisted snapshot, falling back to defaults derived from
// the locale hint for anything missing, places the floating control inside
// the viewport and schedules the first-run tutorial.
func (b *Board) Load(locale string, vp control.Viewport) {
	detected := i18n.Detect(locale)
	defaults := game.Snapshot{
		Round:   game.FirstRound,
		Names:   game.DefaultDirectory(detected.Translator()),
		History: game.Ledger{},
		Lang:    string(detected),
	}
	raw, err := b.opts.Store.Get(store.SnapshotKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		klog.Warningf("Board.Load: failed to read snapshot, using defaults: %v", err)
	}
	snap := game.DecodeSnapshot(raw, defaults)
	lang, ok := i18n.Parse(snap.Lang)
	if !ok {
		klog.Warningf("Board.Load: unknown language %q, using %q", snap.Lang, detected)
		lang = detected
	}

	b.mu.Lock()
	b.raw = raw
	b.lang = lang
	b.levels = snap.Levels
	b.round = snap.Round
	b.names = snap.Names
	b.ledger = snap.History
	b.invalidate()
	b.vp = vp
	b.loaded = true
	b.mu.Unlock()

	b.floating.Place(control.Restore(snap.FabPos, vp))
	klog.Infof("Board.Load: %d records, round %d, language %s", len(snap.History), snap.Round, lang)
	b.persist()
	b.tutorial.AutoStart()
}

// Start launches the idle auto-lock.
func (b *Board) Start() {
	b.idle.Start()
}

// Close cancels every background timer. The Board should not be used
// afterwards.
func (b *Board) Close() {
	b.idle.Stop()
	b.tutorial.Stop()
	b.floating.Close()
	klog.V(1).Infof("Board.Close: timers cancelled")
}

// Floating returns the floating control.
func (b *Board) Floating() *control.Floating { return b.floating }

// Tutorial returns the tutorial sequencer.
func (b *Board) Tutorial() *tutorial.Sequencer { return b.tutorial }

// Loaded reports whether Load has completed.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// AddScore records a score event. Invalid requests create no record and
// return an error wrapping one of the game sentinel errors.
func (b *Board) AddScore(req game.ScoreRequest) (game.ScoreRecord, error) {
	rec, err := game.NewRecord(req, b.opts.Now())
	if err != nil {
		return game.ScoreRecord{}, fmt.Errorf("adding score: %w", err)
	}
	b.mu.Lock()
	b.ledger = b.ledger.Add(rec)
	b.invalidate()
	b.mu.Unlock()
	klog.V(1).Infof("Board.AddScore: %s", rec)
	b.commit()
	return rec, nil
}

// ShiftLevel moves the level of side by delta.
func (b *Board) ShiftLevel(side game.Side, delta int) {
	b.mu.Lock()
	b.levels = b.levels.Shift(side, delta)
	b.mu.Unlock()
	b.commit()
}

// ShiftRound moves the round counter by delta, never below the first round.
func (b *Board) ShiftRound(delta int) {
	b.mu.Lock()
	b.round = b.round.Shift(delta)
	b.mu.Unlock()
	b.commit()
}

// Rename changes the display name of a player. Blank names are ignored.
func (b *Board) Rename(p game.PlayerID, name string) bool {
	b.mu.Lock()
	names, ok := b.names.Rename(p, name)
	if ok {
		b.names = names
	}
	b.mu.Unlock()
	if ok {
		b.commit()
	}
	return ok
}

// SetLanguage switches the display language.
func (b *Board) SetLanguage(lang i18n.Lang) {
	b.mu.Lock()
	if b.lang == lang {
		b.mu.Unlock()
		return
	}
	b.lang = lang
	b.mu.Unlock()
	klog.V(1).Infof("Board.SetLanguage: %s", lang)
	b.commit()
}

// Touch records user activity for the idle auto-lock.
func (b *Board) Touch() {
	b.idle.Touch()
}

// Resize re-snaps the floating control to the new viewport. The new
// position is persisted with the next mutation.
func (b *Board) Resize(vp control.Viewport) {
	b.mu.Lock()
	b.vp = vp
	b.mu.Unlock()
	b.floating.Resize(vp)
}

// Viewport returns the last known viewport.
func (b *Board) Viewport() control.Viewport {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vp
}

// Press starts a floating control gesture. Gestures count as activity for
// the idle auto-lock.
func (b *Board) Press(target control.Target, pointer game.Point) {
	b.idle.Touch()
	b.floating.Press(target, pointer)
}

// Move follows the pointer of a floating control gesture.
func (b *Board) Move(pointer game.Point) {
	b.idle.Touch()
	b.floating.Move(pointer)
}

// Release ends a floating control gesture in the current viewport.
func (b *Board) Release() {
	b.idle.Touch()
	b.floating.Release(b.Viewport())
}

func (b *Board) haptic() {
	if b.opts.Haptic != nil {
		b.opts.Haptic()
	}
}

func (b *Board) onTutorialStep(int) {
	if open, forced := b.tutorial.MenuOverride(); forced {
		b.floating.SetMenu(open)
	}
	b.notify()
}

// commit persists and notifies after a mutation.
func (b *Board) commit() {
	b.persist()
	b.notify()
}

func (b *Board) notify() {
	if b.opts.Changed != nil {
		b.opts.Changed()
	}
}

// persist writes the snapshot. Failures are logged and otherwise ignored.
func (b *Board) persist() {
	pos := b.floating.State().Pos
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return
	}
	snap := game.Snapshot{
		Levels:  b.levels,
		Round:   b.round,
		Names:   b.names,
		History: b.ledger,
		Lang:    string(b.lang),
		FabPos:  &pos,
	}
	blob, err := snap.Encode(b.raw)
	if err != nil {
		klog.Errorf("Board.persist: failed to encode snapshot: %v", err)
		return
	}
	if err := b.opts.Store.Set(store.SnapshotKey, blob); err != nil {
		klog.Errorf("Board.persist: failed to save snapshot: %v", err)
		return
	}
	b.raw = blob
	klog.V(1).Infof("Board.persist: saved %d bytes", len(blob))
}
