package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourname/axis/internal"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS day_log (
	date TEXT PRIMARY KEY,
	top_goal TEXT NOT NULL DEFAULT '',
	essential_task TEXT NOT NULL DEFAULT '',
	daily_rule TEXT NOT NULL DEFAULT '',
	completed BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	streak INT NOT NULL DEFAULT 0,
	completed_dates TEXT[] NOT NULL DEFAULT '{}',
	intensity TEXT NOT NULL DEFAULT 'MED',
	position INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS journal_entries (
	id TEXT PRIMARY KEY,
	date TIMESTAMPTZ NOT NULL,
	content TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT 'REFLECTION',
	tags TEXT[] NOT NULL DEFAULT '{}',
	ai_insight TEXT NOT NULL DEFAULT '',
	position INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS rules (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	position INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS protocols (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	kind TEXT NOT NULL,
	is_completed BOOLEAN NOT NULL DEFAULT FALSE,
	icon TEXT NOT NULL DEFAULT '',
	position INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS pillars (
	id INT PRIMARY KEY CHECK (id = 1),
	mind INT NOT NULL,
	body INT NOT NULL,
	money INT NOT NULL,
	career INT NOT NULL,
	relationships INT NOT NULL,
	environment INT NOT NULL
);
`

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		logger.Errorf("failed to bootstrap postgres schema: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

func (p *PostgresStorage) replaceAll(ctx context.Context, table string, insert func(tx pgx.Tx) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
		return err
	}
	if err := insert(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// --- DayLogRepository ---

func (p *PostgresStorage) GetDayLog(ctx context.Context) (*internal.DayLog, error) {
	row := p.pool.QueryRow(ctx, `SELECT date, top_goal, essential_task, daily_rule, completed FROM day_log LIMIT 1`)
	var log internal.DayLog
	if err := row.Scan(&log.Date, &log.TopGoal, &log.EssentialTask, &log.DailyRule, &log.Completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Errorf("failed to scan day log: %v", err)
		return nil, err
	}
	return &log, nil
}

func (p *PostgresStorage) SaveDayLog(ctx context.Context, log *internal.DayLog) error {
	return p.replaceAll(ctx, "day_log", func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO day_log (date, top_goal, essential_task, daily_rule, completed) VALUES ($1, $2, $3, $4, $5)`,
			log.Date, log.TopGoal, log.EssentialTask, log.DailyRule, log.Completed)
		return err
	})
}

// --- HabitRepository ---

func (p *PostgresStorage) ListHabits(ctx context.Context) ([]internal.Habit, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title, streak, completed_dates, intensity FROM habits ORDER BY position`)
	if err != nil {
		p.logger.Errorf("failed to query habits: %v", err)
		return nil, err
	}
	defer rows.Close()

	habits := []internal.Habit{}
	for rows.Next() {
		var h internal.Habit
		var intensity string
		if err := rows.Scan(&h.ID, &h.Title, &h.Streak, &h.CompletedDates, &intensity); err != nil {
			p.logger.Errorf("failed to scan habit: %v", err)
			return nil, err
		}
		h.Intensity = internal.Intensity(intensity)
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (p *PostgresStorage) ReplaceHabits(ctx context.Context, habits []internal.Habit) error {
	return p.replaceAll(ctx, "habits", func(tx pgx.Tx) error {
		for i, h := range habits {
			dates := h.CompletedDates
			if dates == nil {
				dates = []string{}
			}
			if _, err := tx.Exec(ctx, `INSERT INTO habits (id, title, streak, completed_dates, intensity, position) VALUES ($1, $2, $3, $4, $5, $6)`,
				h.ID, h.Title, h.Streak, dates, string(h.Intensity), i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- JournalRepository ---

func (p *PostgresStorage) ListEntries(ctx context.Context) ([]internal.JournalEntry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, date, content, type, tags, ai_insight FROM journal_entries ORDER BY position`)
	if err != nil {
		p.logger.Errorf("failed to query journal entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.JournalEntry{}
	for rows.Next() {
		var e internal.JournalEntry
		var typ string
		var date time.Time
		if err := rows.Scan(&e.ID, &date, &e.Content, &typ, &e.Tags, &e.AIInsight); err != nil {
			p.logger.Errorf("failed to scan journal entry: %v", err)
			return nil, err
		}
		e.Date = date
		e.Type = internal.EntryType(typ)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStorage) ReplaceEntries(ctx context.Context, entries []internal.JournalEntry) error {
	return p.replaceAll(ctx, "journal_entries", func(tx pgx.Tx) error {
		for i, e := range entries {
			tags := e.Tags
			if tags == nil {
				tags = []string{}
			}
			if _, err := tx.Exec(ctx, `INSERT INTO journal_entries (id, date, content, type, tags, ai_insight, position) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				e.ID, e.Date, e.Content, string(e.Type), tags, e.AIInsight, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- RuleRepository ---

func (p *PostgresStorage) ListRules(ctx context.Context) ([]internal.Rule, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title, description FROM rules ORDER BY position`)
	if err != nil {
		p.logger.Errorf("failed to query rules: %v", err)
		return nil, err
	}
	defer rows.Close()

	rules := []internal.Rule{}
	for rows.Next() {
		var r internal.Rule
		if err := rows.Scan(&r.ID, &r.Title, &r.Description); err != nil {
			p.logger.Errorf("failed to scan rule: %v", err)
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func (p *PostgresStorage) ReplaceRules(ctx context.Context, rules []internal.Rule) error {
	return p.replaceAll(ctx, "rules", func(tx pgx.Tx) error {
		for i, r := range rules {
			if _, err := tx.Exec(ctx, `INSERT INTO rules (id, title, description, position) VALUES ($1, $2, $3, $4)`,
				r.ID, r.Title, r.Description, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- ProtocolRepository ---

func (p *PostgresStorage) ListProtocols(ctx context.Context) ([]internal.Protocol, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title, description, kind, is_completed, icon FROM protocols ORDER BY position`)
	if err != nil {
		p.logger.Errorf("failed to query protocols: %v", err)
		return nil, err
	}
	defer rows.Close()

	protocols := []internal.Protocol{}
	for rows.Next() {
		var pr internal.Protocol
		var kind string
		if err := rows.Scan(&pr.ID, &pr.Title, &pr.Description, &kind, &pr.IsCompleted, &pr.Icon); err != nil {
			p.logger.Errorf("failed to scan protocol: %v", err)
			return nil, err
		}
		pr.Kind = internal.ProtocolKind(kind)
		protocols = append(protocols, pr)
	}
	return protocols, rows.Err()
}

func (p *PostgresStorage) ReplaceProtocols(ctx context.Context, protocols []internal.Protocol) error {
	return p.replaceAll(ctx, "protocols", func(tx pgx.Tx) error {
		for i, pr := range protocols {
			if _, err := tx.Exec(ctx, `INSERT INTO protocols (id, title, description, kind, is_completed, icon, position) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				pr.ID, pr.Title, pr.Description, string(pr.Kind), pr.IsCompleted, pr.Icon, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- PillarRepository ---

func (p *PostgresStorage) GetPillars(ctx context.Context) (*internal.Pillars, error) {
	row := p.pool.QueryRow(ctx, `SELECT mind, body, money, career, relationships, environment FROM pillars WHERE id = 1`)
	var pl internal.Pillars
	if err := row.Scan(&pl.Mind, &pl.Body, &pl.Money, &pl.Career, &pl.Relationships, &pl.Environment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.DefaultPillars(), nil
		}
		p.logger.Errorf("failed to scan pillars: %v", err)
		return nil, err
	}
	return &pl, nil
}

func (p *PostgresStorage) SavePillars(ctx context.Context, pillars *internal.Pillars) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO pillars (id, mind, body, money, career, relationships, environment) VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET mind=EXCLUDED.mind, body=EXCLUDED.body, money=EXCLUDED.money, career=EXCLUDED.career, relationships=EXCLUDED.relationships, environment=EXCLUDED.environment`,
		pillars.Mind, pillars.Body, pillars.Money, pillars.Career, pillars.Relationships, pillars.Environment)
	if err != nil {
		p.logger.Errorf("failed to save pillars: %v", err)
	}
	return err
}

// --- Compile-time assertions ---
var _ DayLogRepository = (*PostgresStorage)(nil)
var _ HabitRepository = (*PostgresStorage)(nil)
var _ JournalRepository = (*PostgresStorage)(nil)
var _ RuleRepository = (*PostgresStorage)(nil)
var _ ProtocolRepository = (*PostgresStorage)(nil)
var _ PillarRepository = (*PostgresStorage)(nil)
