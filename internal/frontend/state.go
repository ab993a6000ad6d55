package frontend

import (
	"sync"

	"github.com/janpfeifer/TuoLaJi/internal/control"
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/janpfeifer/TuoLaJi/internal/scoreboard"
	"github.com/janpfeifer/TuoLaJi/internal/store"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// HapticPulse is the vibration length, in milliseconds, on unlock.
const HapticPulse = 50

// Modal is the dialog currently shown over the board.
type Modal int

const (
	ModalNone Modal = iota
	ModalAction
	ModalScore
	ModalName
	ModalHistory
	ModalLanguage
)

// ClientState holds the scoreboard controller and the components listening
// to its changes.
type ClientState struct {
	Board *scoreboard.Board
	store store.Store

	// Dialog state (persistent across re-renders)
	Modal     Modal
	Selected  game.PlayerID
	ScoreMode game.Mode

	// Listeners for state updates
	mu        sync.Mutex
	listeners map[string]func()
}

var State *ClientState

// Notify calls every listener. It is the Board's Changed hook, so it may run
// on a timer goroutine: listeners must go through ctx.Dispatch.
func (s *ClientState) Notify() {
	s.mu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		if l != nil {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()
	klog.V(2).Infof("ClientState: Notifying %d listeners", len(listeners))
	for _, l := range listeners {
		l()
	}
}

// Listen registers a listener under name, replacing any previous one.
func (s *ClientState) Listen(name string, l func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[name] = l
}

// Unlisten removes the listener registered under name.
func (s *ClientState) Unlisten(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, name)
}

// OpenModal shows dialog m about player p; ModalNone closes any dialog.
func (s *ClientState) OpenModal(m Modal, p game.PlayerID) {
	klog.V(1).Infof("OpenModal: %d for %q", m, p)
	s.Modal = m
	s.Selected = p
	s.Notify()
}

// Vibrate triggers a short haptic pulse, when the device has one.
func (s *ClientState) Vibrate() {
	if app.IsServer {
		return
	}
	nav := app.Window().Get("navigator")
	if !nav.Truthy() || !nav.Get("vibrate").Truthy() {
		return
	}
	nav.Call("vibrate", HapticPulse)
}

// Viewport returns the size of the browser window.
func Viewport() control.Viewport {
	if app.IsServer {
		return control.Viewport{Width: 400, Height: 800}
	}
	w, h := app.Window().Size()
	return control.Viewport{Width: float64(w), Height: float64(h)}
}

// Locale returns the browser's language hint.
func Locale() string {
	if app.IsServer {
		return ""
	}
	nav := app.Window().Get("navigator")
	if !nav.Truthy() {
		return ""
	}
	return nav.Get("language").String()
}

// InitState creates the global state once. The Board is loaded when the
// scoreboard screen mounts.
func InitState() {
	if State != nil {
		klog.V(1).Infof("InitState: state already exists")
		return
	}
	klog.V(1).Infof("InitState: creating new state (was nil)")
	State = &ClientState{listeners: make(map[string]func())}
	var s store.Store = store.Browser{}
	if app.IsServer {
		s = store.NewMemory()
	}
	State.store = s
	State.Board = State.newBoard()
}

func (s *ClientState) newBoard() *scoreboard.Board {
	return scoreboard.New(scoreboard.Options{
		Store:   s.store,
		Changed: s.Notify,
		Haptic:  s.Vibrate,
	})
}

// ResetBoard cancels the timers of the current Board and replaces it with a
// fresh, unloaded one.
func (s *ClientState) ResetBoard() {
	s.Board.Close()
	s.Board = s.newBoard()
}
