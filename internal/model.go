package internal

import "time"

// DayKeyFormat is the calendar-day key format used to scope the day log
// and habit completions (YYYY-MM-DD).
const DayKeyFormat = "2006-01-02"

// DayKey returns the calendar-day key for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

type Intensity string

const (
	IntensityLow  Intensity = "LOW"
	IntensityMed  Intensity = "MED"
	IntensityHigh Intensity = "HIGH"
)

type EntryType string

const (
	EntryReflection EntryType = "REFLECTION"
	EntryTruth      EntryType = "TRUTH"
	EntryGratitude  EntryType = "GRATITUDE"
)

type ProtocolKind string

const (
	ProtocolCompleted ProtocolKind = "completed"
	ProtocolActive    ProtocolKind = "active"
	ProtocolPending   ProtocolKind = "pending"
)

// DayLog is the single date-scoped record of the current day. A stored
// log whose date is not today is discarded and replaced with a blank one.
type DayLog struct {
	Date          string `json:"date"` // YYYY-MM-DD
	TopGoal       string `json:"top_goal"`
	EssentialTask string `json:"essential_task"`
	DailyRule     string `json:"daily_rule"`
	Completed     bool   `json:"completed"`
}

// NewDayLog returns a blank log stamped with the given day key.
func NewDayLog(date string) *DayLog {
	return &DayLog{Date: date}
}

type Habit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Streak         int       `json:"streak"` // never negative
	CompletedDates []string  `json:"completed_dates"`
	Intensity      Intensity `json:"intensity"`
}

type JournalEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	Type      EntryType `json:"type"`
	Tags      []string  `json:"tags"`
	AIInsight string    `json:"ai_insight,omitempty"`
}

type Rule struct {
	ID          string `json:"id"`
	Title       string `json:"title"` // stored uppercase
	Description string `json:"description"`
}

type Protocol struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Kind        ProtocolKind `json:"kind"`
	IsCompleted bool         `json:"is_completed"`
	Icon        string       `json:"icon"`
}

// Pillars holds the six life-domain scores, each kept within [0,100].
type Pillars struct {
	Mind          int `json:"mind"`
	Body          int `json:"body"`
	Money         int `json:"money"`
	Career        int `json:"career"`
	Relationships int `json:"relationships"`
	Environment   int `json:"environment"`
}

// DefaultPillars returns all six scores at their initial value of 50.
func DefaultPillars() *Pillars {
	return &Pillars{Mind: 50, Body: 50, Money: 50, Career: 50, Relationships: 50, Environment: 50}
}
