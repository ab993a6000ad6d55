package control

import (
	"fmt"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/janpfeifer/TuoLaJi/internal/game"
)

var testViewport = Viewport{Width: 400, Height: 800}

// recorder collects the hook calls of a Floating.
type recorder struct {
	mu      sync.Mutex
	moves   []game.Point
	unlocks int
	changes int
}

func (r *recorder) hooks() FloatingHooks {
	return FloatingHooks{
		Changed: func() { r.mu.Lock(); r.changes++; r.mu.Unlock() },
		Moved:   func(p game.Point) { r.mu.Lock(); r.moves = append(r.moves, p); r.mu.Unlock() },
		Unlock:  func() { r.mu.Lock(); r.unlocks++; r.mu.Unlock() },
	}
}

func (r *recorder) snapshot() (moves []game.Point, unlocks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]game.Point(nil), r.moves...), r.unlocks
}

func TestSnapAlwaysReachesAnEdge(t *testing.T) {
	right := testViewport.Width - RightOffset
	for x := -200.0; x <= 600; x += 7.5 {
		for _, y := range []float64{-50, 0, 10, 333, 686, 700, 5000} {
			p := Snap(game.Point{X: x, Y: y}, testViewport)
			if p.X != EdgeInset && p.X != right {
				t.Fatalf("Snap(%v, %v).X = %v, want %v or %v", x, y, p.X, EdgeInset, right)
			}
			if p.Y < EdgeInset || p.Y > testViewport.Height-BottomOffset {
				t.Fatalf("Snap(%v, %v).Y = %v, outside [%v, %v]", x, y, p.Y, EdgeInset, testViewport.Height-BottomOffset)
			}
		}
	}
}

func TestSnapUsesCenter(t *testing.T) {
	// Center at x+24: 175+24 < 200 snaps left, 176+24 = 200 snaps right.
	if got := Snap(game.Point{X: 175, Y: 100}, testViewport).X; got != EdgeInset {
		t.Errorf("x=175 snapped to %v, want left", got)
	}
	if got := Snap(game.Point{X: 176, Y: 100}, testViewport).X; got != testViewport.Width-RightOffset {
		t.Errorf("x=176 snapped to %v, want right", got)
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name  string
		saved *game.Point
		want  game.Point
	}{
		{"none", nil, game.Point{X: 340, Y: 400}},
		{"inside", &game.Point{X: 10, Y: 300}, game.Point{X: 10, Y: 300}},
		{"outside", &game.Point{X: 1000, Y: -20}, game.Point{X: 342, Y: 10}},
		{"too low", &game.Point{X: 0, Y: 790}, game.Point{X: 10, Y: 686}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Restore(tc.saved, testViewport); got != tc.want {
				t.Errorf("Restore(%v) = %v, want %v", tc.saved, got, tc.want)
			}
		})
	}
}

func TestDragSnapsAndReports(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		f := NewFloating(game.Point{X: 342, Y: 400}, rec.hooks())
		defer f.Close()

		f.Press(TargetMenu, game.Point{X: 360, Y: 420})
		time.Sleep(50 * time.Millisecond)
		f.Move(game.Point{X: 100, Y: 250})
		if got := f.State(); got.Pos != (game.Point{X: 82, Y: 230}) || got.Phase != PhaseDragging {
			t.Errorf("mid-drag state = %+v, want raw position {82 230} while dragging", got)
		}
		f.Move(game.Point{X: 30, Y: 5})
		f.Release(testViewport)

		got := f.State()
		if got.Pos != (game.Point{X: EdgeInset, Y: EdgeInset}) {
			t.Errorf("released at %v, want snapped {10 10}", got.Pos)
		}
		if got.MenuOpen {
			t.Errorf("a drag must not toggle the menu")
		}
		if moves, _ := rec.snapshot(); len(moves) != 1 || moves[0] != got.Pos {
			t.Errorf("Moved calls = %v, want exactly [%v]", moves, got.Pos)
		}
	})
}

func TestSlowPressIsNotATap(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := NewFloating(game.Point{X: 342, Y: 400}, FloatingHooks{})
		defer f.Close()
		f.Press(TargetMenu, game.Point{X: 350, Y: 410})
		time.Sleep(TapDuration)
		f.Release(testViewport)
		if f.State().MenuOpen {
			t.Errorf("a press of %s toggled the menu", TapDuration)
		}
	})
}

func TestTapTogglesMenu(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := NewFloating(game.Point{X: 342, Y: 400}, FloatingHooks{})
		defer f.Close()
		for i, want := range []bool{true, false, true} {
			f.Press(TargetMenu, game.Point{X: 350, Y: 410})
			time.Sleep(100 * time.Millisecond)
			f.Move(game.Point{X: 352, Y: 412})
			f.Release(testViewport)
			if got := f.State().MenuOpen; got != want {
				t.Errorf("after tap #%d MenuOpen = %v, want %v", i+1, got, want)
			}
		}
	})
}

func TestTapLocksAndLockBlocksInput(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := NewFloating(game.Point{X: 342, Y: 400}, FloatingHooks{})
		defer f.Close()
		f.SetMenu(true)

		f.Press(TargetLock, game.Point{X: 350, Y: 410})
		f.Release(testViewport)
		state := f.State()
		if !state.Locked {
			t.Fatalf("tap on the lock did not lock")
		}
		if state.MenuOpen {
			t.Errorf("locking must close the menu")
		}

		before := f.State().Pos
		f.Press(TargetHandle, game.Point{X: 350, Y: 410})
		f.Move(game.Point{X: 10, Y: 10})
		f.Release(testViewport)
		f.Press(TargetMenu, game.Point{X: 350, Y: 410})
		f.Release(testViewport)
		if got := f.State(); got.Pos != before || got.MenuOpen || got.Phase != PhaseIdle {
			t.Errorf("locked control reacted to input: %+v", got)
		}
	})
}

func TestLongPressUnlocks(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		f := NewFloating(game.Point{X: 342, Y: 400}, rec.hooks())
		defer f.Close()
		f.Lock()

		// A short hold does nothing.
		f.Press(TargetLock, game.Point{X: 350, Y: 410})
		time.Sleep(UnlockHold - time.Millisecond)
		f.Release(testViewport)
		synctest.Wait()
		if !f.Locked() {
			t.Fatalf("released before %s but unlocked anyway", UnlockHold)
		}

		f.Press(TargetLock, game.Point{X: 350, Y: 410})
		time.Sleep(UnlockHold)
		synctest.Wait()
		if f.Locked() {
			t.Fatalf("holding the lock for %s did not unlock", UnlockHold)
		}
		if _, unlocks := rec.snapshot(); unlocks != 1 {
			t.Errorf("Unlock hook called %d times, want 1", unlocks)
		}
		f.Release(testViewport)
		if f.Locked() {
			t.Errorf("releasing the long press re-locked the control")
		}
		if moves, _ := rec.snapshot(); len(moves) != 0 {
			t.Errorf("lock presses reported moves: %v", moves)
		}
	})
}

func TestRelockCooldown(t *testing.T) {
	for _, wait := range []time.Duration{100 * time.Millisecond, UnlockCooldown} {
		t.Run(fmt.Sprint(wait), func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				f := NewFloating(game.Point{X: 342, Y: 400}, FloatingHooks{})
				defer f.Close()
				f.Lock()
				f.Press(TargetLock, game.Point{X: 350, Y: 410})
				time.Sleep(UnlockHold)
				synctest.Wait()
				f.Release(testViewport)

				time.Sleep(wait)
				synctest.Wait()
				f.Press(TargetLock, game.Point{X: 350, Y: 410})
				f.Release(testViewport)
				wantLocked := wait >= UnlockCooldown
				if got := f.Locked(); got != wantLocked {
					t.Errorf("tap %s after unlock: Locked = %v, want %v", wait, got, wantLocked)
				}
			})
		})
	}
}

func TestDragDuringCooldownSnaps(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		f := NewFloating(game.Point{X: 342, Y: 400}, rec.hooks())
		defer f.Close()
		f.Lock()
		f.Press(TargetLock, game.Point{X: 350, Y: 410})
		time.Sleep(UnlockHold)
		synctest.Wait()
		f.Release(testViewport)

		f.Press(TargetHandle, game.Point{X: 350, Y: 410})
		f.Move(game.Point{X: 200, Y: 300})
		time.Sleep(300 * time.Millisecond)
		f.Release(testViewport)

		want := game.Point{X: testViewport.Width - RightOffset, Y: 290}
		if got := f.State().Pos; got != want {
			t.Errorf("drag released %s after unlock ended at %v, want %v", 300*time.Millisecond, got, want)
		}
		if moves, _ := rec.snapshot(); len(moves) != 1 || moves[0] != want {
			t.Errorf("Moved calls = %v, want [%v]", moves, want)
		}
	})
}

func TestLockMidDragSnapsOnRelease(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		f := NewFloating(game.Point{X: 342, Y: 400}, rec.hooks())
		defer f.Close()

		f.Press(TargetHandle, game.Point{X: 350, Y: 410})
		f.Move(game.Point{X: 200, Y: 300})
		if !f.Lock() {
			t.Fatalf("Lock during a drag returned false")
		}
		f.Move(game.Point{X: 20, Y: 20})
		f.Release(testViewport)

		got := f.State()
		want := game.Point{X: testViewport.Width - RightOffset, Y: 290}
		if got.Pos != want || !got.Locked || got.Phase != PhaseIdle {
			t.Errorf("after locking mid-drag state = %+v, want locked and idle at %v", got, want)
		}
		if moves, _ := rec.snapshot(); len(moves) != 1 || moves[0] != want {
			t.Errorf("Moved calls = %v, want [%v]", moves, want)
		}
	})
}

func TestResizeResnapsWithoutReporting(t *testing.T) {
	var rec recorder
	f := NewFloating(game.Point{X: 342, Y: 686}, rec.hooks())
	defer f.Close()
	f.Resize(Viewport{Width: 600, Height: 400})
	if got := f.State().Pos; got != (game.Point{X: 542, Y: 286}) {
		t.Errorf("after resize Pos = %v, want {542 286}", got)
	}
	f.Resize(Viewport{Width: 300, Height: 400})
	if got := f.State().Pos; got != (game.Point{X: 242, Y: 286}) {
		t.Errorf("after second resize Pos = %v, want {242 286}", got)
	}
	if moves, _ := rec.snapshot(); len(moves) != 0 {
		t.Errorf("Resize reported moves %v, want none", moves)
	}
}

func TestClosedIgnoresInput(t *testing.T) {
	f := NewFloating(game.Point{X: 342, Y: 400}, FloatingHooks{})
	f.Close()
	f.Press(TargetMenu, game.Point{X: 350, Y: 410})
	f.Release(testViewport)
	if f.State().MenuOpen {
		t.Errorf("closed control toggled its menu")
	}
	if f.Lock() {
		t.Errorf("closed control accepted Lock")
	}
}
