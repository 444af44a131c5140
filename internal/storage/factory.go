package storage

import (
	"fmt"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/config"
)

// NewRepositories selects a backend from the configuration and returns
// the per-collection repositories backed by it.
func NewRepositories(cfg *config.Config, logger internal.Logger) (*Repositories, error) {
	switch cfg.StorageBackend {
	case "file":
		s, err := NewFileStorage(cfg.DataDir, logger)
		if err != nil {
			return nil, err
		}
		return bundle(s, s, s, s, s, s, s), nil
	case "sqlite":
		s, err := NewSQLiteStorage(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return bundle(s, s, s, s, s, s, s), nil
	case "postgres":
		s, err := NewPostgresStorage(cfg.PostgresDSN, logger)
		if err != nil {
			return nil, err
		}
		return bundle(s, s, s, s, s, s, s), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}

func bundle(
	day DayLogRepository,
	habits HabitRepository,
	journal JournalRepository,
	rules RuleRepository,
	protocols ProtocolRepository,
	pillars PillarRepository,
	closer interface{ Close() error },
) *Repositories {
	return &Repositories{
		DayLogs:   day,
		Habits:    habits,
		Journal:   journal,
		Rules:     rules,
		Protocols: protocols,
		Pillars:   pillars,
		Closer:    closer,
	}
}
