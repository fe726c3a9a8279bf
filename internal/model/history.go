package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxHistoryEntries caps the chat history; older entries are dropped
const MaxHistoryEntries = 10

// TimeOfDayLayout is used when rendering history timestamps
const TimeOfDayLayout = "3:04:05 PM"

// HistoryEntry represents a single answered question
type HistoryEntry struct {
	ID        string
	Question  string
	Answer    string
	Timestamp time.Time
}

// NewHistoryEntry creates an entry with a fresh ID
func NewHistoryEntry(question, answer string, at time.Time) HistoryEntry {
	return HistoryEntry{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		Timestamp: at,
	}
}

// TimeOfDay returns the local time-of-day the entry was recorded at
func (he HistoryEntry) TimeOfDay() string {
	if he.Timestamp.IsZero() {
		return DashPlaceholder
	}
	return he.Timestamp.Local().Format(TimeOfDayLayout)
}

// DashPlaceholder is shown for missing values
const DashPlaceholder = "—"

// HistoryItem is the render-ready form of a HistoryEntry
type HistoryItem struct {
	ID        string
	Number    int
	Question  string
	Answer    string
	TimeOfDay string
}

// BuildHistoryItems numbers entries from len(entries) down to 1, newest first
func BuildHistoryItems(entries []HistoryEntry) []HistoryItem {
	items := make([]HistoryItem, 0, len(entries))
	for i, entry := range entries {
		items = append(items, HistoryItem{
			ID:        entry.ID,
			Number:    len(entries) - i,
			Question:  entry.Question,
			Answer:    entry.Answer,
			TimeOfDay: entry.TimeOfDay(),
		})
	}
	return items
}
