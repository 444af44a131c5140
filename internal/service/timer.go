package service

import (
	"sync"
	"time"

	"github.com/yourname/axis/internal"
)

// FocusDurationSeconds is the fixed length of a deep-work session.
const FocusDurationSeconds = 45 * 60

type TimerSnapshot struct {
	RemainingSeconds  int  `json:"remaining_seconds"`
	Running           bool `json:"running"`
	SessionsCompleted int  `json:"sessions_completed"`
}

// FocusTimer is a cooperative countdown owned by the server. While
// running, a 1-second tick decrements the remaining time; at zero the
// timer stops itself and counts a completed session. The tick goroutine
// is cancelled on pause, reset and Close so no recurring callback
// outlives the session.
type FocusTimer struct {
	mu        sync.Mutex
	remaining int
	running   bool
	sessions  int
	stopChan  chan struct{} // nil unless the tick goroutine is live
	logger    internal.Logger
}

func NewFocusTimer(logger internal.Logger) *FocusTimer {
	return &FocusTimer{
		remaining: FocusDurationSeconds,
		logger:    logger,
	}
}

// Start sets the running flag and launches the tick goroutine. Starting
// an already-running or fully-elapsed timer is a no-op; progress is
// never reset here.
func (t *FocusTimer) Start() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.remaining == 0 {
		return t.snapshotLocked()
	}
	t.running = true
	t.stopChan = make(chan struct{})
	go t.run(t.stopChan)
	return t.snapshotLocked()
}

// Pause clears the running flag and cancels the tick goroutine without
// touching the remaining time.
func (t *FocusTimer) Pause() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	return t.snapshotLocked()
}

// Reset cancels any tick goroutine and restores the full duration,
// discarding progress.
func (t *FocusTimer) Reset() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.remaining = FocusDurationSeconds
	return t.snapshotLocked()
}

// Snapshot returns the current timer state.
func (t *FocusTimer) Snapshot() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Close cancels the tick goroutine on teardown.
func (t *FocusTimer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	return nil
}

func (t *FocusTimer) stopLocked() {
	t.running = false
	if t.stopChan != nil {
		close(t.stopChan)
		t.stopChan = nil
	}
}

func (t *FocusTimer) snapshotLocked() TimerSnapshot {
	return TimerSnapshot{
		RemainingSeconds:  t.remaining,
		Running:           t.running,
		SessionsCompleted: t.sessions,
	}
}

func (t *FocusTimer) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if done := t.tick(); done {
				return
			}
		case <-stop:
			return
		}
	}
}

// tick decrements the remaining time by one second. It reports true when
// the goroutine should exit: either the timer was stopped underneath it
// or the countdown just reached zero. Reaching zero clears the running
// flag and counts the session exactly once; the remaining time never
// goes negative.
func (t *FocusTimer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return true
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.running = false
		t.stopChan = nil
		t.sessions++
		if t.logger != nil {
			t.logger.Infof("timer: session complete, %d total", t.sessions)
		}
		return true
	}
	return false
}
