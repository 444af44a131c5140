package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yourname/axis/internal"
)

// File name per store, mirroring the browser keys of the original data.
const (
	dayLogFile    = "axis_daylog.json"
	habitsFile    = "axis_habits.json"
	journalFile   = "axis_journal.json"
	rulesFile     = "axis_rules.json"
	protocolsFile = "axis_health.json"
	pillarsFile   = "axis_pillars.json"
)

type FileStorage struct {
	mu        sync.RWMutex
	dayLog    *internal.DayLog // nil when nothing stored
	habits    []internal.Habit
	journal   []internal.JournalEntry
	rules     []internal.Rule
	protocols []internal.Protocol
	pillars   *internal.Pillars

	dir          string
	saveChan     chan string
	shutdownChan chan struct{}
	saveDelay    time.Duration
	logger       internal.Logger
}

func NewFileStorage(dir string, logger internal.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStorage{
		dir:          dir,
		saveChan:     make(chan string, 16),
		shutdownChan: make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}
	s.load()
	go s.saveWorker()
	return s, nil
}

// load reads every store file. Missing or malformed data falls back to
// the store's default value and is never surfaced as an error.
func (s *FileStorage) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var day internal.DayLog
	if s.readJSON(dayLogFile, &day) {
		s.dayLog = &day
	}
	if !s.readJSON(habitsFile, &s.habits) {
		s.habits = nil
	}
	if !s.readJSON(journalFile, &s.journal) {
		s.journal = nil
	}
	if !s.readJSON(rulesFile, &s.rules) {
		s.rules = nil
	}
	if !s.readJSON(protocolsFile, &s.protocols) {
		s.protocols = nil
	}
	var p internal.Pillars
	if s.readJSON(pillarsFile, &p) {
		s.pillars = &p
	}
}

func (s *FileStorage) readJSON(name string, v interface{}) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("storage: failed to read %s: %v", name, err)
		}
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warnf("storage: malformed %s, falling back to default: %v", name, err)
		return false
	}
	return true
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveStore(name string) error {
	s.mu.RLock()
	var v interface{}
	switch name {
	case dayLogFile:
		v = s.dayLog
	case habitsFile:
		v = emptyIfNilHabits(s.habits)
	case journalFile:
		v = emptyIfNilEntries(s.journal)
	case rulesFile:
		v = emptyIfNilRules(s.rules)
	case protocolsFile:
		v = emptyIfNilProtocols(s.protocols)
	case pillarsFile:
		v = s.pillars
	}
	s.mu.RUnlock()

	if v == nil {
		return nil
	}
	return atomicWriteFileJSON(filepath.Join(s.dir, name), v)
}

func emptyIfNilHabits(h []internal.Habit) []internal.Habit {
	if h == nil {
		return []internal.Habit{}
	}
	return h
}

func emptyIfNilEntries(e []internal.JournalEntry) []internal.JournalEntry {
	if e == nil {
		return []internal.JournalEntry{}
	}
	return e
}

func emptyIfNilRules(r []internal.Rule) []internal.Rule {
	if r == nil {
		return []internal.Rule{}
	}
	return r
}

func emptyIfNilProtocols(p []internal.Protocol) []internal.Protocol {
	if p == nil {
		return []internal.Protocol{}
	}
	return p
}

// saveWorker batches writes so a burst of mutations produces one disk
// write per store.
func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	dirty := make(map[string]bool)
	for {
		select {
		case name := <-s.saveChan:
			dirty[name] = true
			timer.Reset(s.saveDelay)
		case <-timer.C:
			for name := range dirty {
				if err := s.saveStore(name); err != nil {
					s.logger.Errorf("storage: error saving %s: %v", name, err)
				}
				delete(dirty, name)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) signalSave(name string) {
	select {
	case s.saveChan <- name:
	default:
	}
}

// Close stops the save worker and flushes every store synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	for _, name := range []string{dayLogFile, habitsFile, journalFile, rulesFile, protocolsFile, pillarsFile} {
		if err := s.saveStore(name); err != nil {
			return err
		}
	}
	return nil
}

// --- DayLogRepository ---

func (s *FileStorage) GetDayLog(ctx context.Context) (*internal.DayLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dayLog == nil {
		return nil, nil
	}
	log := *s.dayLog
	return &log, nil
}

func (s *FileStorage) SaveDayLog(ctx context.Context, log *internal.DayLog) error {
	s.mu.Lock()
	copied := *log
	s.dayLog = &copied
	s.mu.Unlock()
	s.signalSave(dayLogFile)
	return nil
}

// --- HabitRepository ---

func (s *FileStorage) ListHabits(ctx context.Context) ([]internal.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	habits := make([]internal.Habit, len(s.habits))
	copy(habits, s.habits)
	return habits, nil
}

func (s *FileStorage) ReplaceHabits(ctx context.Context, habits []internal.Habit) error {
	s.mu.Lock()
	s.habits = make([]internal.Habit, len(habits))
	copy(s.habits, habits)
	s.mu.Unlock()
	s.signalSave(habitsFile)
	return nil
}

// --- JournalRepository ---

func (s *FileStorage) ListEntries(ctx context.Context) ([]internal.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]internal.JournalEntry, len(s.journal))
	copy(entries, s.journal)
	return entries, nil
}

func (s *FileStorage) ReplaceEntries(ctx context.Context, entries []internal.JournalEntry) error {
	s.mu.Lock()
	s.journal = make([]internal.JournalEntry, len(entries))
	copy(s.journal, entries)
	s.mu.Unlock()
	s.signalSave(journalFile)
	return nil
}

// --- RuleRepository ---

func (s *FileStorage) ListRules(ctx context.Context) ([]internal.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := make([]internal.Rule, len(s.rules))
	copy(rules, s.rules)
	return rules, nil
}

func (s *FileStorage) ReplaceRules(ctx context.Context, rules []internal.Rule) error {
	s.mu.Lock()
	s.rules = make([]internal.Rule, len(rules))
	copy(s.rules, rules)
	s.mu.Unlock()
	s.signalSave(rulesFile)
	return nil
}

// --- ProtocolRepository ---

func (s *FileStorage) ListProtocols(ctx context.Context) ([]internal.Protocol, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	protocols := make([]internal.Protocol, len(s.protocols))
	copy(protocols, s.protocols)
	return protocols, nil
}

func (s *FileStorage) ReplaceProtocols(ctx context.Context, protocols []internal.Protocol) error {
	s.mu.Lock()
	s.protocols = make([]internal.Protocol, len(protocols))
	copy(s.protocols, protocols)
	s.mu.Unlock()
	s.signalSave(protocolsFile)
	return nil
}

// --- PillarRepository ---

func (s *FileStorage) GetPillars(ctx context.Context) (*internal.Pillars, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pillars == nil {
		return internal.DefaultPillars(), nil
	}
	p := *s.pillars
	return &p, nil
}

func (s *FileStorage) SavePillars(ctx context.Context, pillars *internal.Pillars) error {
	s.mu.Lock()
	p := *pillars
	s.pillars = &p
	s.mu.Unlock()
	s.signalSave(pillarsFile)
	return nil
}

// --- Compile-time assertions ---
var _ DayLogRepository = (*FileStorage)(nil)
var _ HabitRepository = (*FileStorage)(nil)
var _ JournalRepository = (*FileStorage)(nil)
var _ RuleRepository = (*FileStorage)(nil)
var _ ProtocolRepository = (*FileStorage)(nil)
var _ PillarRepository = (*FileStorage)(nil)
