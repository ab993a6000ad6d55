// Package tutorial implements the first-run walkthrough of the scoreboard.
//
// The walkthrough is a linear sequence of Steps. It starts automatically,
// after AutoStartDelay, the first time the scoreboard is loaded, and is
// marked as seen in the store once it is closed or skipped.
package tutorial

import (
	"sync"
	"time"

	"github.com/janpfeifer/TuoLaJi/internal/store"
	"k8s.io/klog/v2"
)

// AutoStartDelay is how long after load the walkthrough starts on first run.
const AutoStartDelay = 500 * time.Millisecond

// Inactive is the step index when the walkthrough is not showing.
const Inactive = -1

// Target is the region of the screen a step highlights.
type Target string

const (
	TargetFab     Target = "fab"
	TargetLock    Target = "lock"
	TargetLang    Target = "lang"
	TargetReset   Target = "reset"
	TargetLevels  Target = "levels"
	TargetRound   Target = "round"
	TargetPlayers Target = "players"
	TargetHistory Target = "history"
)

// Step is one page of the walkthrough.
type Step struct {
	Target    Target
	TitleKey  string // i18n key of the card title.
	DescKey   string // i18n key of the card text.
	OpensMenu bool   // The floating menu is forced open during this step.
	CardOnTop bool   // The card is placed at the top of the screen instead of the bottom.
}

// Steps is the walkthrough, in order.
var Steps = []Step{
	{Target: TargetFab, TitleKey: "tutorialStep1Title", DescKey: "tutorialStep1Desc"},
	{Target: TargetLock, TitleKey: "tutorialLockTitle", DescKey: "tutorialLockDesc"},
	{Target: TargetLang, TitleKey: "tutorialLangTitle", DescKey: "tutorialLangDesc", OpensMenu: true},
	{Target: TargetReset, TitleKey: "tutorialResetTitle", DescKey: "tutorialResetDesc", OpensMenu: true},
	{Target: TargetLevels, TitleKey: "tutorialStep2Title", DescKey: "tutorialStep2Desc"},
	{Target: TargetRound, TitleKey: "tutorialStep3Title", DescKey: "tutorialStep3Desc"},
	{Target: TargetPlayers, TitleKey: "tutorialStep4Title", DescKey: "tutorialStep4Desc", CardOnTop: true},
	{Target: TargetHistory, TitleKey: "tutorialStep5Title", DescKey: "tutorialStep5Desc", CardOnTop: true},
}

// Sequencer walks through Steps.
//
// changed is called, outside of the Sequencer's lock, with the new step
// index every time it changes. The auto-start timer calls it from its own
// goroutine.
type Sequencer struct {
	mu      sync.Mutex
	store   store.Store
	changed func(step int)
	step    int
	timer   *time.Timer
}

// New creates an inactive Sequencer that records the seen marker in s.
func New(s store.Store, changed func(step int)) *Sequencer {
	return &Sequencer{store: s, changed: changed, step: Inactive}
}

// Seen reports whether the walkthrough was already closed once.
func (q *Sequencer) Seen() bool {
	return store.Flag(q.store, store.TutorialSeenKey)
}

// Start shows the first step. It can be used to restart the walkthrough at
// any time.
func (q *Sequencer) Start() {
	q.set(0)
}

// Next advances to the following step. Advancing past the last step closes
// the walkthrough.
func (q *Sequencer) Next() {
	q.mu.Lock()
	step := q.step
	q.mu.Unlock()
	if step == Inactive {
		return
	}
	if step+1 >= len(Steps) {
		q.Close()
		return
	}
	q.set(step + 1)
}

// Close hides the walkthrough and marks it as seen. Skip is the same.
func (q *Sequencer) Close() {
	q.set(Inactive)
	if err := store.SetFlag(q.store, store.TutorialSeenKey); err != nil {
		klog.Errorf("Tutorial: failed to save seen marker: %v", err)
	}
}

// Step returns the current step index, or Inactive.
func (q *Sequencer) Step() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.step
}

// Current returns the step being shown.
func (q *Sequencer) Current() (Step, bool) {
	step := q.Step()
	if step == Inactive {
		return Step{}, false
	}
	return Steps[step], true
}

// IsLast reports whether the current step is the last one.
func (q *Sequencer) IsLast() bool {
	return q.Step() == len(Steps)-1
}

// AutoStart starts the walkthrough after AutoStartDelay, unless it was
// already seen. It returns whether the start was scheduled.
func (q *Sequencer) AutoStart() bool {
	if q.Seen() {
		klog.V(1).Infof("Tutorial: already seen")
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(AutoStartDelay, func() {
		q.mu.Lock()
		q.timer = nil
		q.mu.Unlock()
		q.Start()
	})
	return true
}

// Stop cancels a pending auto-start.
func (q *Sequencer) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// MenuOverride returns the state the floating menu must have during the
// current step. forced is false when the walkthrough is not showing.
func (q *Sequencer) MenuOverride() (open, forced bool) {
	cur, ok := q.Current()
	if !ok {
		return false, false
	}
	return cur.OpensMenu, true
}

func (q *Sequencer) set(step int) {
	q.mu.Lock()
	if q.step == step {
		q.mu.Unlock()
		return
	}
	q.step = step
	q.mu.Unlock()
	klog.V(1).Infof("Tutorial: step %d", step)
	if q.changed != nil {
		q.changed(step)
	}
}
