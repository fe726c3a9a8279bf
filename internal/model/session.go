package model

import (
	"fmt"
	"sync"
	"time"
)

// DefaultDownloadID is used in the download filename when no video ID is known
const DefaultDownloadID = "youtube"

// Session holds the page-lifetime state of the viewer: the last transcript,
// its video ID and the chat history (newest first)
type Session struct {
	mu         sync.RWMutex
	transcript string
	videoID    string
	history    []HistoryEntry
	phase      Phase
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{
		history: make([]HistoryEntry, 0, MaxHistoryEntries),
		phase:   PhaseEmpty,
	}
}

// SetTranscript stores a freshly fetched transcript and its video ID
func (s *Session) SetTranscript(transcript, videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = transcript
	s.videoID = videoID
	if transcript != "" {
		s.advance(PhaseTranscriptLoaded)
	}
}

// Transcript returns the held transcript, empty if none
func (s *Session) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcript
}

// VideoID returns the held video ID, empty if none
func (s *Session) VideoID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.videoID
}

// HasTranscript checks if a question can be asked
func (s *Session) HasTranscript() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcript != ""
}

// PushHistoryEntry prepends an answered question and drops entries beyond
// MaxHistoryEntries
func (s *Session) PushHistoryEntry(question, answer string, at time.Time) HistoryEntry {
	entry := NewHistoryEntry(question, answer, at)

	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]HistoryEntry, 0, MaxHistoryEntries)
	history = append(history, entry)
	history = append(history, s.history...)
	if len(history) > MaxHistoryEntries {
		history = history[:MaxHistoryEntries]
	}
	s.history = history
	s.advance(PhaseAnswered)

	return entry
}

// History returns a copy of the chat history, newest first
func (s *Session) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	return history
}

// HistoryLen returns the number of history entries
func (s *Session) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// ClearHistory drops all history entries. The transcript is kept.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = make([]HistoryEntry, 0, MaxHistoryEntries)
	if s.phase == PhaseAnswered {
		s.phase = PhaseTranscriptLoaded
	}
}

// Phase returns the current view phase
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// DownloadFilename returns transcript_<videoID>.txt, or transcript_youtube.txt
// when no video ID is held
func (s *Session) DownloadFilename() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TranscriptFilename(s.videoID)
}

// TranscriptFilename builds the download filename for a video ID
func TranscriptFilename(videoID string) string {
	if videoID == "" {
		videoID = DefaultDownloadID
	}
	return fmt.Sprintf("transcript_%s.txt", videoID)
}

// advance moves the phase forward only; caller holds the lock
func (s *Session) advance(to Phase) {
	if to.rank() > s.phase.rank() {
		s.phase = to
	}
}
