package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourname/axis/internal"
)

func TestResolveDayLog_StaleReplaced(t *testing.T) {
	store := &memStore{dayLog: &internal.DayLog{
		Date:          "2023-01-01",
		TopGoal:       "ship the release",
		EssentialTask: "write the changelog",
		DailyRule:     "no meetings before noon",
		Completed:     true,
	}}
	now := time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC)

	log, err := ResolveDayLog(context.Background(), store, now)
	assert.NoError(t, err)
	assert.Equal(t, "2023-01-02", log.Date)
	assert.Empty(t, log.TopGoal)
	assert.Empty(t, log.EssentialTask)
	assert.Empty(t, log.DailyRule)
	assert.False(t, log.Completed)
	// The fresh record replaces the stale one in storage too.
	assert.Equal(t, "2023-01-02", store.dayLog.Date)
}

func TestResolveDayLog_CurrentKept(t *testing.T) {
	store := &memStore{dayLog: &internal.DayLog{Date: "2023-01-02", TopGoal: "deep work"}}
	now := time.Date(2023, 1, 2, 23, 59, 0, 0, time.UTC)

	log, err := ResolveDayLog(context.Background(), store, now)
	assert.NoError(t, err)
	assert.Equal(t, "deep work", log.TopGoal)
}

func TestResolveDayLog_NothingStored(t *testing.T) {
	store := &memStore{}
	now := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	log, err := ResolveDayLog(context.Background(), store, now)
	assert.NoError(t, err)
	assert.Equal(t, "2023-01-02", log.Date)
}

func TestUpdateDayLog_PersistsWholeRecord(t *testing.T) {
	store := &memStore{}
	now := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	log, err := UpdateDayLog(context.Background(), store, now, &DayLogRequest{
		TopGoal:   "one thing",
		Completed: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2023-01-02", log.Date)
	assert.True(t, store.dayLog.Completed)
	assert.Equal(t, "one thing", store.dayLog.TopGoal)
}
