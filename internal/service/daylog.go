package service

import (
	"context"
	"time"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/storage"
)

type DayLogRequest struct {
	TopGoal       string `json:"top_goal"`
	EssentialTask string `json:"essential_task"`
	DailyRule     string `json:"daily_rule"`
	Completed     bool   `json:"completed"`
}

// ResolveDayLog returns the log for today. A stored log stamped with a
// different day is stale: it is discarded and a fresh blank record for
// today takes its place.
func ResolveDayLog(ctx context.Context, repo storage.DayLogRepository, now time.Time) (*internal.DayLog, error) {
	today := internal.DayKey(now)

	stored, err := repo.GetDayLog(ctx)
	if err != nil {
		return nil, err
	}
	if stored != nil && stored.Date == today {
		return stored, nil
	}

	fresh := internal.NewDayLog(today)
	if err := repo.SaveDayLog(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// UpdateDayLog replaces today's log fields and persists the whole record.
func UpdateDayLog(ctx context.Context, repo storage.DayLogRepository, now time.Time, req *DayLogRequest) (*internal.DayLog, error) {
	log := &internal.DayLog{
		Date:          internal.DayKey(now),
		TopGoal:       req.TopGoal,
		EssentialTask: req.EssentialTask,
		DailyRule:     req.DailyRule,
		Completed:     req.Completed,
	}
	if err := repo.SaveDayLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}
