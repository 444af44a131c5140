package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/insight"
	"github.com/yourname/axis/internal/storage"
)

// InsightThreshold is the content length above which an entry gets a
// model-generated insight attached before insertion.
const InsightThreshold = 50

// SaveEntry creates a journal entry. Blank content is a no-op. Content
// longer than InsightThreshold blocks on the insight call so the entry
// is inserted with its insight already attached. Entries are prepended,
// newest first, and never edited or deleted afterwards.
func SaveEntry(ctx context.Context, repo storage.JournalRepository, insights insight.Service, content string, now time.Time) ([]internal.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return repo.ListEntries(ctx)
	}

	entry := internal.JournalEntry{
		ID:      uuid.NewString(),
		Date:    now,
		Content: content,
		Type:    internal.EntryReflection,
		Tags:    []string{},
	}
	if len(content) > InsightThreshold {
		entry.AIInsight = insights.BehavioralInsight(ctx, content, insight.KindJournal)
	}

	entries, err := repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	entries = append([]internal.JournalEntry{entry}, entries...)

	if err := repo.ReplaceEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
