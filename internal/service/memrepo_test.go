package service

import (
	"context"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/insight"
)

// memStore is an in-memory stand-in for the storage backends.
type memStore struct {
	dayLog    *internal.DayLog
	habits    []internal.Habit
	journal   []internal.JournalEntry
	rules     []internal.Rule
	protocols []internal.Protocol
	pillars   *internal.Pillars
}

func (m *memStore) GetDayLog(ctx context.Context) (*internal.DayLog, error) {
	return m.dayLog, nil
}

func (m *memStore) SaveDayLog(ctx context.Context, log *internal.DayLog) error {
	copied := *log
	m.dayLog = &copied
	return nil
}

func (m *memStore) ListHabits(ctx context.Context) ([]internal.Habit, error) {
	return append([]internal.Habit{}, m.habits...), nil
}

func (m *memStore) ReplaceHabits(ctx context.Context, habits []internal.Habit) error {
	m.habits = append([]internal.Habit{}, habits...)
	return nil
}

func (m *memStore) ListEntries(ctx context.Context) ([]internal.JournalEntry, error) {
	return append([]internal.JournalEntry{}, m.journal...), nil
}

func (m *memStore) ReplaceEntries(ctx context.Context, entries []internal.JournalEntry) error {
	m.journal = append([]internal.JournalEntry{}, entries...)
	return nil
}

func (m *memStore) ListRules(ctx context.Context) ([]internal.Rule, error) {
	return append([]internal.Rule{}, m.rules...), nil
}

func (m *memStore) ReplaceRules(ctx context.Context, rules []internal.Rule) error {
	m.rules = append([]internal.Rule{}, rules...)
	return nil
}

func (m *memStore) ListProtocols(ctx context.Context) ([]internal.Protocol, error) {
	return append([]internal.Protocol{}, m.protocols...), nil
}

func (m *memStore) ReplaceProtocols(ctx context.Context, protocols []internal.Protocol) error {
	m.protocols = append([]internal.Protocol{}, protocols...)
	return nil
}

func (m *memStore) GetPillars(ctx context.Context) (*internal.Pillars, error) {
	if m.pillars == nil {
		return internal.DefaultPillars(), nil
	}
	p := *m.pillars
	return &p, nil
}

func (m *memStore) SavePillars(ctx context.Context, pillars *internal.Pillars) error {
	p := *pillars
	m.pillars = &p
	return nil
}

// fakeInsights records calls and returns a canned tip.
type fakeInsights struct {
	calls int
	tip   string
}

func (f *fakeInsights) BehavioralInsight(ctx context.Context, contextText string, kind insight.Kind) string {
	f.calls++
	if f.tip != "" {
		return f.tip
	}
	return "canned insight"
}

func (f *fakeInsights) IdentityQuestions(ctx context.Context) []string {
	return insight.FallbackQuestions
}
