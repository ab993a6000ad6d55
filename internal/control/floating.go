package control

import (
	"sync"
	"time"

	"github.com/janpfeifer/TuoLaJi/internal/game"
	"k8s.io/klog/v2"
)

// Timings of the floating control gestures.
const (
	TapDuration    = 200 * time.Millisecond // A shorter press is a tap.
	UnlockHold     = time.Second            // Hold on the lock to unlock.
	UnlockCooldown = 500 * time.Millisecond // Re-locking is ignored this long after an unlock.
)

// Target is the part of the floating control a press started on.
type Target int

const (
	TargetHandle Target = iota // Anywhere on the control that is not a button.
	TargetMenu                 // The menu toggle button.
	TargetLock                 // The lock button.
)

// Phase is the gesture currently in progress.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseLockPress // Holding the lock while locked.
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseLockPress:
		return "lock-press"
	}
	return "idle"
}

// FloatingHooks are called, outside of the control's lock, when its state
// changes. Timer-driven changes call them from another goroutine.
type FloatingHooks struct {
	Changed func()           // Any visible state changed.
	Moved   func(game.Point) // A drag ended at this snapped position.
	Unlock  func()           // Long-press unlock fired; used for haptic feedback.
}

// FloatingState is a copy of the visible state of the control.
type FloatingState struct {
	Pos      game.Point
	Locked   bool
	MenuOpen bool
	Phase    Phase
}

// Floating is the draggable, edge-snapping, lockable floating control.
type Floating struct {
	mu    sync.Mutex
	hooks FloatingHooks

	pos      game.Point
	locked   bool
	menuOpen bool

	phase    Phase
	target   Target
	pressAt  time.Time
	pressPos game.Point // Control position when the press started.
	grab     game.Point // Pointer offset from the control's origin.

	unlockTimer *time.Timer
	lastUnlock  time.Time
	closed      bool
}

// NewFloating creates an unlocked control with a closed menu at pos.
func NewFloating(pos game.Point, hooks FloatingHooks) *Floating {
	return &Floating{pos: pos, hooks: hooks}
}

// State returns a copy of the visible state.
func (f *Floating) State() FloatingState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FloatingState{Pos: f.pos, Locked: f.locked, MenuOpen: f.menuOpen, Phase: f.phase}
}

// Press starts a gesture at pointer on target.
//
// While locked only a press on the lock does anything: it arms the
// long-press unlock. Otherwise the press starts a drag.
func (f *Floating) Press(target Target, pointer game.Point) {
	f.mu.Lock()
	if f.closed || f.phase != PhaseIdle {
		f.mu.Unlock()
		return
	}
	if f.locked {
		if target != TargetLock {
			f.mu.Unlock()
			return
		}
		f.phase = PhaseLockPress
		f.unlockTimer = time.AfterFunc(UnlockHold, f.onUnlockHold)
		f.mu.Unlock()
		klog.V(1).Infof("Floating: lock press started")
		return
	}
	f.phase = PhaseDragging
	f.target = target
	f.pressAt = time.Now()
	f.pressPos = f.pos
	f.grab = game.Point{X: pointer.X - f.pos.X, Y: pointer.Y - f.pos.Y}
	f.mu.Unlock()
	klog.V(1).Infof("Floating: drag started at %v", pointer)
	f.notify(nil)
}

// Move follows the pointer during a drag. The position is not clamped
// until the drag ends.
func (f *Floating) Move(pointer game.Point) {
	f.mu.Lock()
	if f.phase != PhaseDragging || f.locked {
		f.mu.Unlock()
		return
	}
	f.pos = game.Point{X: pointer.X - f.grab.X, Y: pointer.Y - f.grab.Y}
	f.mu.Unlock()
	f.notify(nil)
}

// Release ends the current gesture.
//
// A drag snaps to the nearest edge and reports the new position. A short,
// still press on the menu button toggles the menu; on the lock button it
// locks the control, unless an unlock happened within UnlockCooldown.
func (f *Floating) Release(vp Viewport) {
	f.mu.Lock()
	var moved *game.Point
	switch f.phase {
	case PhaseIdle:
		f.mu.Unlock()
		return

	case PhaseLockPress:
		if f.unlockTimer != nil {
			f.unlockTimer.Stop()
			f.unlockTimer = nil
		}
		f.phase = PhaseIdle

	case PhaseDragging:
		f.phase = PhaseIdle
		now := time.Now()
		held := now.Sub(f.pressAt)
		tap := held < TapDuration && distance(f.pos, f.pressPos) < TapSlop
		f.pos = Snap(f.pos, vp)
		p := f.pos
		moved = &p
		switch {
		case f.locked:
			klog.V(1).Infof("Floating: locked during drag, snapped to %v", p)
		case tap && f.target == TargetMenu:
			f.menuOpen = !f.menuOpen
			klog.V(1).Infof("Floating: menu toggled, open=%v", f.menuOpen)
		case tap && f.target == TargetLock:
			if now.Sub(f.lastUnlock) < UnlockCooldown {
				klog.V(1).Infof("Floating: lock ignored, %s after unlock", now.Sub(f.lastUnlock))
			} else {
				f.locked = true
				f.menuOpen = false
				klog.Infof("Floating: locked by tap")
			}
		case !tap:
			klog.V(1).Infof("Floating: drag ended after %s, snapped to %v", held, p)
		}
	}
	f.mu.Unlock()
	f.notify(moved)
}

func (f *Floating) onUnlockHold() {
	f.mu.Lock()
	if f.closed || f.phase != PhaseLockPress || !f.locked {
		f.mu.Unlock()
		return
	}
	f.unlockTimer = nil
	f.locked = false
	f.lastUnlock = time.Now()
	f.mu.Unlock()
	klog.Infof("Floating: unlocked by long press")
	if f.hooks.Unlock != nil {
		f.hooks.Unlock()
	}
	f.notify(nil)
}

// Lock engages the lock, closing the menu. It returns false if the control
// was already locked. A drag in progress stops following the pointer and is
// snapped by the next Release.
func (f *Floating) Lock() bool {
	f.mu.Lock()
	if f.locked || f.closed {
		f.mu.Unlock()
		return false
	}
	f.locked = true
	f.menuOpen = false
	f.mu.Unlock()
	f.notify(nil)
	return true
}

// Locked reports whether the lock is engaged.
func (f *Floating) Locked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locked
}

// SetMenu opens or closes the menu regardless of the lock.
func (f *Floating) SetMenu(open bool) {
	f.mu.Lock()
	if f.menuOpen == open {
		f.mu.Unlock()
		return
	}
	f.menuOpen = open
	f.mu.Unlock()
	f.notify(nil)
}

// Place moves the control to pos without snapping or reporting it. It is
// used to restore a persisted position.
func (f *Floating) Place(pos game.Point) {
	f.mu.Lock()
	f.pos = pos
	f.mu.Unlock()
	f.notify(nil)
}

// Resize re-snaps the control to the nearest edge of the new viewport.
// The new position is not reported through Moved.
func (f *Floating) Resize(vp Viewport) {
	f.mu.Lock()
	f.pos = Snap(f.pos, vp)
	f.mu.Unlock()
	f.notify(nil)
}

// Close cancels pending timers. The control ignores input afterwards.
func (f *Floating) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.phase = PhaseIdle
	if f.unlockTimer != nil {
		f.unlockTimer.Stop()
		f.unlockTimer = nil
	}
}

func (f *Floating) notify(moved *game.Point) {
	if moved != nil && f.hooks.Moved != nil {
		f.hooks.Moved(*moved)
	}
	if f.hooks.Changed != nil {
		f.hooks.Changed()
	}
}
