package control

import (
	"sync"
	"time"

	"k8s.io/klog/v2"
)

// Idle auto-lock timings.
const (
	IdleTimeout     = 10 * time.Second
	IdleCheckPeriod = time.Second
)

// IdleLock calls its lock function once the user has been inactive for
// IdleTimeout, checking every IdleCheckPeriod.
type IdleLock struct {
	mu           sync.Mutex
	lastActivity time.Time
	lock         func()
	stop         chan struct{}
}

// NewIdleLock creates a stopped IdleLock. lock is called from the checker
// goroutine on every check while idle, so it must be a no-op when already locked.
func NewIdleLock(lock func()) *IdleLock {
	return &IdleLock{lock: lock, lastActivity: time.Now()}
}

// Start launches the periodic check. Starting a running IdleLock does nothing.
func (l *IdleLock) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		return
	}
	l.lastActivity = time.Now()
	l.stop = make(chan struct{})
	go l.loop(l.stop)
}

// Touch records user activity.
func (l *IdleLock) Touch() {
	l.mu.Lock()
	l.lastActivity = time.Now()
	l.mu.Unlock()
}

// Idle returns how long the user has been inactive.
func (l *IdleLock) Idle() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return time.Since(l.lastActivity)
}

// Stop ends the periodic check.
func (l *IdleLock) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		close(l.stop)
		l.stop = nil
	}
}

func (l *IdleLock) loop(stop chan struct{}) {
	klog.V(1).Infof("IdleLock: started")
	ticker := time.NewTicker(IdleCheckPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			klog.V(1).Infof("IdleLock: stopped")
			return
		case <-ticker.C:
			if l.Idle() >= IdleTimeout {
				l.lock()
			}
		}
	}
}
