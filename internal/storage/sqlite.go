package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yourname/axis/internal"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS day_log (
	date TEXT PRIMARY KEY,
	top_goal TEXT NOT NULL DEFAULT '',
	essential_task TEXT NOT NULL DEFAULT '',
	daily_rule TEXT NOT NULL DEFAULT '',
	completed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	streak INTEGER NOT NULL DEFAULT 0,
	completed_dates TEXT NOT NULL DEFAULT '[]',
	intensity TEXT NOT NULL DEFAULT 'MED',
	position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS journal_entries (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	content TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT 'REFLECTION',
	tags TEXT NOT NULL DEFAULT '[]',
	ai_insight TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS rules (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS protocols (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	kind TEXT NOT NULL,
	is_completed INTEGER NOT NULL DEFAULT 0,
	icon TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS pillars (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	mind INTEGER NOT NULL,
	body INTEGER NOT NULL,
	money INTEGER NOT NULL,
	career INTEGER NOT NULL,
	relationships INTEGER NOT NULL,
	environment INTEGER NOT NULL
);
`

type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: failed to create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("storage: failed to open sqlite db: %v", err)
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		logger.Errorf("storage: failed to bootstrap schema: %v", err)
		return nil, err
	}
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// replaceAll rewrites a table inside one transaction so the stored state
// always matches the in-memory collection.
func (s *SQLiteStorage) replaceAll(ctx context.Context, table string, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		tx.Rollback()
		return err
	}
	if err := insert(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func marshalStrings(v []string) string {
	if v == nil {
		v = []string{}
	}
	data, _ := json.Marshal(v)
	return string(data)
}

func unmarshalStrings(s string) []string {
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return []string{}
	}
	return v
}

// --- DayLogRepository ---

func (s *SQLiteStorage) GetDayLog(ctx context.Context) (*internal.DayLog, error) {
	row := s.db.QueryRowContext(ctx, `SELECT date, top_goal, essential_task, daily_rule, completed FROM day_log LIMIT 1`)
	var log internal.DayLog
	var completed int
	if err := row.Scan(&log.Date, &log.TopGoal, &log.EssentialTask, &log.DailyRule, &completed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		s.logger.Errorf("storage: failed to scan day log: %v", err)
		return nil, err
	}
	log.Completed = completed != 0
	return &log, nil
}

func (s *SQLiteStorage) SaveDayLog(ctx context.Context, log *internal.DayLog) error {
	return s.replaceAll(ctx, "day_log", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO day_log (date, top_goal, essential_task, daily_rule, completed) VALUES (?, ?, ?, ?, ?)`,
			log.Date, log.TopGoal, log.EssentialTask, log.DailyRule, boolToInt(log.Completed))
		return err
	})
}

// --- HabitRepository ---

func (s *SQLiteStorage) ListHabits(ctx context.Context) ([]internal.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, streak, completed_dates, intensity FROM habits ORDER BY position`)
	if err != nil {
		s.logger.Errorf("storage: failed to query habits: %v", err)
		return nil, err
	}
	defer rows.Close()

	habits := []internal.Habit{}
	for rows.Next() {
		var h internal.Habit
		var dates, intensity string
		if err := rows.Scan(&h.ID, &h.Title, &h.Streak, &dates, &intensity); err != nil {
			s.logger.Errorf("storage: failed to scan habit: %v", err)
			return nil, err
		}
		h.CompletedDates = unmarshalStrings(dates)
		h.Intensity = internal.Intensity(intensity)
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStorage) ReplaceHabits(ctx context.Context, habits []internal.Habit) error {
	return s.replaceAll(ctx, "habits", func(tx *sql.Tx) error {
		for i, h := range habits {
			if _, err := tx.ExecContext(ctx, `INSERT INTO habits (id, title, streak, completed_dates, intensity, position) VALUES (?, ?, ?, ?, ?, ?)`,
				h.ID, h.Title, h.Streak, marshalStrings(h.CompletedDates), string(h.Intensity), i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- JournalRepository ---

func (s *SQLiteStorage) ListEntries(ctx context.Context) ([]internal.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, date, content, type, tags, ai_insight FROM journal_entries ORDER BY position`)
	if err != nil {
		s.logger.Errorf("storage: failed to query journal entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.JournalEntry{}
	for rows.Next() {
		var e internal.JournalEntry
		var date, typ, tags string
		if err := rows.Scan(&e.ID, &date, &e.Content, &typ, &tags, &e.AIInsight); err != nil {
			s.logger.Errorf("storage: failed to scan journal entry: %v", err)
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, date)
		if err != nil {
			s.logger.Warnf("storage: malformed entry date %q: %v", date, err)
		}
		e.Date = t
		e.Type = internal.EntryType(typ)
		e.Tags = unmarshalStrings(tags)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStorage) ReplaceEntries(ctx context.Context, entries []internal.JournalEntry) error {
	return s.replaceAll(ctx, "journal_entries", func(tx *sql.Tx) error {
		for i, e := range entries {
			if _, err := tx.ExecContext(ctx, `INSERT INTO journal_entries (id, date, content, type, tags, ai_insight, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				e.ID, e.Date.Format(time.RFC3339Nano), e.Content, string(e.Type), marshalStrings(e.Tags), e.AIInsight, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- RuleRepository ---

func (s *SQLiteStorage) ListRules(ctx context.Context) ([]internal.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description FROM rules ORDER BY position`)
	if err != nil {
		s.logger.Errorf("storage: failed to query rules: %v", err)
		return nil, err
	}
	defer rows.Close()

	rules := []internal.Rule{}
	for rows.Next() {
		var r internal.Rule
		if err := rows.Scan(&r.ID, &r.Title, &r.Description); err != nil {
			s.logger.Errorf("storage: failed to scan rule: %v", err)
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func (s *SQLiteStorage) ReplaceRules(ctx context.Context, rules []internal.Rule) error {
	return s.replaceAll(ctx, "rules", func(tx *sql.Tx) error {
		for i, r := range rules {
			if _, err := tx.ExecContext(ctx, `INSERT INTO rules (id, title, description, position) VALUES (?, ?, ?, ?)`,
				r.ID, r.Title, r.Description, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- ProtocolRepository ---

func (s *SQLiteStorage) ListProtocols(ctx context.Context) ([]internal.Protocol, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, kind, is_completed, icon FROM protocols ORDER BY position`)
	if err != nil {
		s.logger.Errorf("storage: failed to query protocols: %v", err)
		return nil, err
	}
	defer rows.Close()

	protocols := []internal.Protocol{}
	for rows.Next() {
		var p internal.Protocol
		var kind string
		var completed int
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &kind, &completed, &p.Icon); err != nil {
			s.logger.Errorf("storage: failed to scan protocol: %v", err)
			return nil, err
		}
		p.Kind = internal.ProtocolKind(kind)
		p.IsCompleted = completed != 0
		protocols = append(protocols, p)
	}
	return protocols, rows.Err()
}

func (s *SQLiteStorage) ReplaceProtocols(ctx context.Context, protocols []internal.Protocol) error {
	return s.replaceAll(ctx, "protocols", func(tx *sql.Tx) error {
		for i, p := range protocols {
			if _, err := tx.ExecContext(ctx, `INSERT INTO protocols (id, title, description, kind, is_completed, icon, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Title, p.Description, string(p.Kind), boolToInt(p.IsCompleted), p.Icon, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- PillarRepository ---

func (s *SQLiteStorage) GetPillars(ctx context.Context) (*internal.Pillars, error) {
	row := s.db.QueryRowContext(ctx, `SELECT mind, body, money, career, relationships, environment FROM pillars WHERE id = 1`)
	var p internal.Pillars
	if err := row.Scan(&p.Mind, &p.Body, &p.Money, &p.Career, &p.Relationships, &p.Environment); err != nil {
		if err == sql.ErrNoRows {
			return internal.DefaultPillars(), nil
		}
		s.logger.Errorf("storage: failed to scan pillars: %v", err)
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStorage) SavePillars(ctx context.Context, pillars *internal.Pillars) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO pillars (id, mind, body, money, career, relationships, environment) VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET mind=excluded.mind, body=excluded.body, money=excluded.money, career=excluded.career, relationships=excluded.relationships, environment=excluded.environment`,
		pillars.Mind, pillars.Body, pillars.Money, pillars.Career, pillars.Relationships, pillars.Environment)
	if err != nil {
		s.logger.Errorf("storage: failed to save pillars: %v", err)
	}
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// --- Compile-time assertions ---
var _ DayLogRepository = (*SQLiteStorage)(nil)
var _ HabitRepository = (*SQLiteStorage)(nil)
var _ JournalRepository = (*SQLiteStorage)(nil)
var _ RuleRepository = (*SQLiteStorage)(nil)
var _ ProtocolRepository = (*SQLiteStorage)(nil)
var _ PillarRepository = (*SQLiteStorage)(nil)
