package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used for the reading time estimate
const WordsPerMinute = 200

// TranscriptStats summarizes a transcript for display
type TranscriptStats struct {
	Words          int
	Characters     int
	ReadingMinutes int
}

// ComputeStats counts whitespace-separated words and characters
func ComputeStats(transcript string) TranscriptStats {
	words := len(strings.Fields(transcript))
	return TranscriptStats{
		Words:          words,
		Characters:     utf8.RuneCountInString(transcript),
		ReadingMinutes: ReadingMinutes(words),
	}
}

// ReadingMinutes returns ceil(words / WordsPerMinute)
func ReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// String formats stats as "N words • N characters • ~N min read"
func (ts TranscriptStats) String() string {
	return fmt.Sprintf("%d words • %d characters • ~%d min read", ts.Words, ts.Characters, ts.ReadingMinutes)
}
