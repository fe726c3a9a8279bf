package viewer

import (
	"errors"

	"github.com/ytget/yt-transcript-qa/internal/platform"
)

// Action identifies a user action that can be busy
type Action string

const (
	ActionFetch Action = "fetch"
	ActionAsk   Action = "ask"
)

// String returns the string representation of Action
func (a Action) String() string {
	return string(a)
}

// Validation errors; these never reach the backend
var (
	ErrEmptyURL      = errors.New("empty URL")
	ErrEmptyQuestion = errors.New("empty question")
	ErrNoTranscript  = errors.New("no transcript loaded")
)

// ServerError is a well-formed backend response with success=false
type ServerError struct {
	Message string
}

// Error returns the server-supplied message
func (e *ServerError) Error() string {
	if e.Message == "" {
		return defaultTexts[MsgUnknownError]
	}
	return e.Message
}

// VideoPreview describes the video card shown after a transcript loads
type VideoPreview struct {
	VideoID      string
	WatchURL     string
	EmbedURL     string
	ThumbnailURL string
}

// NewVideoPreview builds the preview URLs for a video ID
func NewVideoPreview(videoID string) VideoPreview {
	return VideoPreview{
		VideoID:      videoID,
		WatchURL:     platform.WatchURL(videoID),
		EmbedURL:     platform.EmbedURL(videoID),
		ThumbnailURL: platform.ThumbnailURL(videoID),
	}
}
