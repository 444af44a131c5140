package api

import (
	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/insight"
	"github.com/yourname/axis/internal/service"
	"github.com/yourname/axis/internal/storage"
)

type App interface {
	Logger() internal.Logger
	DayLogRepo() storage.DayLogRepository
	HabitRepo() storage.HabitRepository
	JournalRepo() storage.JournalRepository
	RuleRepo() storage.RuleRepository
	ProtocolRepo() storage.ProtocolRepository
	PillarRepo() storage.PillarRepository
	Insights() insight.Service
	Timer() *service.FocusTimer
}
