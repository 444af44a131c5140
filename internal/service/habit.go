package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/storage"
)

// MaxHabits caps the collection to keep the user focused.
const MaxHabits = 3

// AddHabit appends a new habit. A blank title or a full collection makes
// the call a no-op returning the unchanged list.
func AddHabit(ctx context.Context, repo storage.HabitRepository, title string) ([]internal.Habit, error) {
	habits, err := repo.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	if len(habits) >= MaxHabits || strings.TrimSpace(title) == "" {
		return habits, nil
	}

	habits = append(habits, internal.Habit{
		ID:             uuid.NewString(),
		Title:          title,
		Streak:         0,
		CompletedDates: []string{},
		Intensity:      internal.IntensityMed,
	})
	if err := repo.ReplaceHabits(ctx, habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// ToggleHabit registers or reverses today's completion for the habit.
// The date set and the streak move in lock-step: adding today's key
// increments the streak, removing it decrements floored at 0. An unknown
// id is a no-op.
func ToggleHabit(ctx context.Context, repo storage.HabitRepository, id string, now time.Time) ([]internal.Habit, error) {
	habits, err := repo.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	today := internal.DayKey(now)
	changed := false
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		h := &habits[i]
		if idx := indexOf(h.CompletedDates, today); idx >= 0 {
			h.CompletedDates = append(h.CompletedDates[:idx], h.CompletedDates[idx+1:]...)
			if h.Streak > 0 {
				h.Streak--
			}
		} else {
			h.CompletedDates = append(h.CompletedDates, today)
			h.Streak++
		}
		changed = true
		break
	}
	if !changed {
		return habits, nil
	}

	if err := repo.ReplaceHabits(ctx, habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// RemoveHabit deletes the habit with the given id if present.
func RemoveHabit(ctx context.Context, repo storage.HabitRepository, id string) ([]internal.Habit, error) {
	habits, err := repo.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return habits, nil
	}

	if err := repo.ReplaceHabits(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func indexOf(dates []string, key string) int {
	for i, d := range dates {
		if d == key {
			return i
		}
	}
	return -1
}
