package storage

import (
	"context"

	"github.com/yourname/axis/internal"
)

// Each collection is loaded and persisted as a whole: mutations happen
// in the service layer and the new state replaces the stored one.

type DayLogRepository interface {
	GetDayLog(ctx context.Context) (*internal.DayLog, error)
	SaveDayLog(ctx context.Context, log *internal.DayLog) error
}

type HabitRepository interface {
	ListHabits(ctx context.Context) ([]internal.Habit, error)
	ReplaceHabits(ctx context.Context, habits []internal.Habit) error
}

type JournalRepository interface {
	ListEntries(ctx context.Context) ([]internal.JournalEntry, error)
	ReplaceEntries(ctx context.Context, entries []internal.JournalEntry) error
}

type RuleRepository interface {
	ListRules(ctx context.Context) ([]internal.Rule, error)
	ReplaceRules(ctx context.Context, rules []internal.Rule) error
}

type ProtocolRepository interface {
	ListProtocols(ctx context.Context) ([]internal.Protocol, error)
	ReplaceProtocols(ctx context.Context, protocols []internal.Protocol) error
}

type PillarRepository interface {
	GetPillars(ctx context.Context) (*internal.Pillars, error)
	SavePillars(ctx context.Context, pillars *internal.Pillars) error
}

// Repositories bundles the per-collection interfaces a backend provides.
type Repositories struct {
	DayLogs   DayLogRepository
	Habits    HabitRepository
	Journal   JournalRepository
	Rules     RuleRepository
	Protocols ProtocolRepository
	Pillars   PillarRepository
	Closer    interface{ Close() error }
}
