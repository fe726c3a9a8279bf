package viewer

import (
	"context"

	"github.com/ytget/yt-transcript-qa/internal/api"
	"github.com/ytget/yt-transcript-qa/internal/model"
	"github.com/ytget/yt-transcript-qa/internal/platform"
)

// Backend defines the transcript backend calls used by the Service.
// *api.Client implements it.
type Backend interface {
	FetchTranscript(ctx context.Context, videoURL string) (*api.TranscriptResponse, error)
	AskQuestion(ctx context.Context, question, transcript string) (*api.AnswerResponse, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// VideoLookup resolves preview metadata and thumbnails for a video ID.
// *platform.OEmbedService implements it.
type VideoLookup interface {
	LookupVideo(ctx context.Context, videoID string) (*platform.VideoInfo, error)
	FetchThumbnail(ctx context.Context, thumbnailURL string) ([]byte, error)
}

// FileSaver persists the transcript and returns the written path
type FileSaver interface {
	Save(filename, content string) (string, error)
}

// SaverFunc adapts a function to FileSaver
type SaverFunc func(filename, content string) (string, error)

// Save calls f
func (f SaverFunc) Save(filename, content string) (string, error) {
	return f(filename, content)
}

// Translator returns display text for a message key.
// The UI localization implements it.
type Translator interface {
	GetText(key string) string
}

// Notifier shows transient notifications
type Notifier interface {
	Notify(message string, kind model.NotificationType)
}

// View is the rendering surface driven by the Service. Implementations must
// be safe to call from any goroutine.
type View interface {
	// SetBusy disables the action's button, swaps its label and toggles the
	// loading overlay
	SetBusy(action Action, busy bool)
	ShowTranscript(transcript string, stats model.TranscriptStats)
	ShowVideoPreview(preview VideoPreview)
	// UpdateVideoTitle and ShowThumbnail are ignored when videoID is no
	// longer the previewed video
	UpdateVideoTitle(videoID, title, author string)
	ShowThumbnail(videoID string, image []byte)
	ShowQASection()
	ShowAnswer(question, answer string)
	ClearQuestion()
	// RenderHistory replaces the history list; an empty slice hides it
	RenderHistory(items []model.HistoryItem)
}
