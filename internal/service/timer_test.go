package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_TicksToZeroOnce(t *testing.T) {
	timer := NewFocusTimer(nil)
	timer.remaining = 5
	timer.running = true

	for i := 0; i < 5; i++ {
		timer.tick()
	}
	snap := timer.Snapshot()
	assert.Equal(t, 0, snap.RemainingSeconds)
	assert.False(t, snap.Running)
	assert.Equal(t, 1, snap.SessionsCompleted)

	// A 6th tick must neither go negative nor double-count.
	timer.tick()
	snap = timer.Snapshot()
	assert.Equal(t, 0, snap.RemainingSeconds)
	assert.Equal(t, 1, snap.SessionsCompleted)
}

func TestTimer_PauseKeepsRemaining(t *testing.T) {
	timer := NewFocusTimer(nil)
	timer.remaining = 10
	timer.running = true

	timer.tick()
	snap := timer.Pause()
	assert.False(t, snap.Running)
	assert.Equal(t, 9, snap.RemainingSeconds)

	// A stray tick after pause is ignored.
	timer.tick()
	assert.Equal(t, 9, timer.Snapshot().RemainingSeconds)
}

func TestTimer_ResetRestoresDuration(t *testing.T) {
	timer := NewFocusTimer(nil)
	timer.remaining = 10
	timer.running = true
	timer.tick()

	snap := timer.Reset()
	assert.False(t, snap.Running)
	assert.Equal(t, FocusDurationSeconds, snap.RemainingSeconds)
	assert.Equal(t, 0, snap.SessionsCompleted)
}

func TestTimer_StartIsIdempotentWhileRunning(t *testing.T) {
	timer := NewFocusTimer(nil)

	snap := timer.Start()
	assert.True(t, snap.Running)
	first := timer.stopChan

	snap = timer.Start()
	assert.True(t, snap.Running)
	assert.Equal(t, first, timer.stopChan)

	timer.Close()
	assert.False(t, timer.Snapshot().Running)
}

func TestTimer_StartAtZeroIsNoOp(t *testing.T) {
	timer := NewFocusTimer(nil)
	timer.remaining = 0

	snap := timer.Start()
	assert.False(t, snap.Running)
	assert.Equal(t, 0, snap.RemainingSeconds)
}
