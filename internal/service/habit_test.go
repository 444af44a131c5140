package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddHabit_CapacityAndBlankTitle(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		habits, err := AddHabit(ctx, store, fmt.Sprintf("habit %d", i))
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(habits), MaxHabits)
	}
	assert.Len(t, store.habits, MaxHabits)

	// Blank title is a silent no-op even with free slots.
	store2 := &memStore{}
	habits, err := AddHabit(ctx, store2, "   ")
	assert.NoError(t, err)
	assert.Empty(t, habits)
}

func TestAddHabit_Defaults(t *testing.T) {
	store := &memStore{}
	habits, err := AddHabit(context.Background(), store, "cold shower")
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.NotEmpty(t, habits[0].ID)
	assert.Zero(t, habits[0].Streak)
	assert.Empty(t, habits[0].CompletedDates)
	assert.Equal(t, "MED", string(habits[0].Intensity))
}

func TestToggleHabit_PairIsIdempotent(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	now := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)

	habits, err := AddHabit(ctx, store, "read")
	require.NoError(t, err)
	id := habits[0].ID

	habits, err = ToggleHabit(ctx, store, id, now)
	require.NoError(t, err)
	assert.Equal(t, 1, habits[0].Streak)
	assert.Contains(t, habits[0].CompletedDates, "2023-06-01")

	habits, err = ToggleHabit(ctx, store, id, now)
	require.NoError(t, err)
	assert.Equal(t, 0, habits[0].Streak)
	assert.NotContains(t, habits[0].CompletedDates, "2023-06-01")
}

func TestToggleHabit_StreakNeverNegative(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	now := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)

	habits, err := AddHabit(ctx, store, "read")
	require.NoError(t, err)
	id := habits[0].ID

	// Force the inconsistent shape: today marked complete at zero streak.
	store.habits[0].CompletedDates = []string{"2023-06-01"}
	store.habits[0].Streak = 0

	habits, err = ToggleHabit(ctx, store, id, now)
	require.NoError(t, err)
	assert.Equal(t, 0, habits[0].Streak)
}

func TestToggleHabit_UnknownID(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	if _, err := AddHabit(ctx, store, "read"); err != nil {
		t.Fatal(err)
	}
	before := store.habits[0]

	habits, err := ToggleHabit(ctx, store, "nope", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, before, habits[0])
}

func TestRemoveHabit(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	habits, err := AddHabit(ctx, store, "read")
	require.NoError(t, err)
	id := habits[0].ID

	habits, err = RemoveHabit(ctx, store, id)
	assert.NoError(t, err)
	assert.Empty(t, habits)

	// Removing again is harmless.
	habits, err = RemoveHabit(ctx, store, id)
	assert.NoError(t, err)
	assert.Empty(t, habits)
}
