package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourname/axis/internal"
)

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStorage(dir, testLogger())
	require.NoError(t, err)

	habits := []internal.Habit{
		{ID: "h1", Title: "read", Streak: 4, CompletedDates: []string{"2023-06-01"}, Intensity: internal.IntensityHigh},
		{ID: "h2", Title: "run", Streak: 0, CompletedDates: []string{}, Intensity: internal.IntensityMed},
	}
	entries := []internal.JournalEntry{
		{ID: "j1", Date: time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC), Content: "morning pages", Type: internal.EntryReflection, Tags: []string{"am"}, AIInsight: "Keep going."},
	}
	pillars := &internal.Pillars{Mind: 60, Body: 55, Money: 50, Career: 45, Relationships: 70, Environment: 40}

	require.NoError(t, s.ReplaceHabits(ctx, habits))
	require.NoError(t, s.ReplaceEntries(ctx, entries))
	require.NoError(t, s.SavePillars(ctx, pillars))
	require.NoError(t, s.SaveDayLog(ctx, &internal.DayLog{Date: "2023-06-01", TopGoal: "ship"}))
	require.NoError(t, s.Close())

	// Reopen from disk and compare.
	s2, err := NewFileStorage(dir, testLogger())
	require.NoError(t, err)
	defer s2.Close()

	gotHabits, err := s2.ListHabits(ctx)
	require.NoError(t, err)
	assert.Equal(t, habits, gotHabits)

	gotEntries, err := s2.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, gotEntries)

	gotPillars, err := s2.GetPillars(ctx)
	require.NoError(t, err)
	assert.Equal(t, pillars, gotPillars)

	gotLog, err := s2.GetDayLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2023-06-01", gotLog.Date)
	assert.Equal(t, "ship", gotLog.TopGoal)
}

func TestFileStorage_MalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "axis_habits.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "axis_pillars.json"), []byte(`"nope"`), 0o644))

	s, err := NewFileStorage(dir, testLogger())
	require.NoError(t, err)
	defer s.Close()

	habits, err := s.ListHabits(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, habits)

	pillars, err := s.GetPillars(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, internal.DefaultPillars(), pillars)
}

func TestFileStorage_MissingDayLog(t *testing.T) {
	s, err := NewFileStorage(t.TempDir(), testLogger())
	require.NoError(t, err)
	defer s.Close()

	log, err := s.GetDayLog(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, log)
}

func TestFileStorage_RulesAndProtocols(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStorage(dir, testLogger())
	require.NoError(t, err)

	rules := []internal.Rule{{ID: "r1", Title: "RULE 01: MONEY", Description: "Never buy a liability on credit."}}
	protocols := []internal.Protocol{{ID: "p1", Title: "Morning Hydration", Description: "1L Water", Kind: internal.ProtocolCompleted, IsCompleted: true, Icon: "Droplets"}}

	require.NoError(t, s.ReplaceRules(ctx, rules))
	require.NoError(t, s.ReplaceProtocols(ctx, protocols))
	require.NoError(t, s.Close())

	s2, err := NewFileStorage(dir, testLogger())
	require.NoError(t, err)
	defer s2.Close()

	gotRules, err := s2.ListRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, rules, gotRules)

	gotProtocols, err := s2.ListProtocols(ctx)
	require.NoError(t, err)
	assert.Equal(t, protocols, gotProtocols)
}
