package viewer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ytget/yt-transcript-qa/internal/model"
	"github.com/ytget/yt-transcript-qa/internal/platform"
)

// Service is the viewer controller. It owns the session and drives the View.
type Service struct {
	session  *model.Session
	backend  Backend
	view     View
	notifier Notifier
	texts    Translator
	videos   VideoLookup
	saver    FileSaver
	now      func() time.Time

	// renderMu keeps history snapshots queued in the order they were taken
	renderMu sync.Mutex
}

// Option configures a Service
type Option func(*Service)

// WithSession uses an existing session instead of a fresh one
func WithSession(session *model.Session) Option {
	return func(s *Service) {
		if session != nil {
			s.session = session
		}
	}
}

// WithTranslator sets the message translator
func WithTranslator(texts Translator) Option {
	return func(s *Service) {
		s.texts = texts
	}
}

// WithVideoLookup enables title lookup for the preview card
func WithVideoLookup(videos VideoLookup) Option {
	return func(s *Service) {
		s.videos = videos
	}
}

// WithFileSaver sets where downloaded transcripts go
func WithFileSaver(saver FileSaver) Option {
	return func(s *Service) {
		s.saver = saver
	}
}

// WithClock overrides time.Now for history timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new viewer controller
func NewService(backend Backend, view View, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		session:  model.NewSession(),
		backend:  backend,
		view:     view,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session returns the session owned by the service
func (s *Service) Session() *model.Session {
	return s.session
}

// FetchTranscript loads the transcript for rawURL from the backend and
// renders it. Empty input is rejected before any network call.
func (s *Service) FetchTranscript(ctx context.Context, rawURL string) error {
	videoURL := strings.TrimSpace(rawURL)
	if videoURL == "" {
		s.notify(s.text(MsgPleaseEnterURL), model.NotificationError)
		return ErrEmptyURL
	}

	log.Printf("Processing URL: %s", videoURL)

	s.view.SetBusy(ActionFetch, true)
	defer s.view.SetBusy(ActionFetch, false)

	resp, err := s.backend.FetchTranscript(ctx, videoURL)
	if err != nil {
		log.Printf("Fetch transcript error: %v", err)
		s.notify(err.Error(), model.NotificationError)
		return fmt.Errorf("fetch transcript: %w", err)
	}

	if !resp.Success {
		serverErr := &ServerError{Message: resp.Error}
		log.Printf("Backend rejected transcript request: %s", resp.Error)
		s.notifyServerError(serverErr)
		return serverErr
	}

	s.session.SetTranscript(resp.Transcript, resp.VideoID)
	log.Printf("Transcript loaded: video_id=%s chars=%d", resp.VideoID, len(resp.Transcript))

	s.view.ShowTranscript(resp.Transcript, model.ComputeStats(resp.Transcript))
	s.showVideoPreview(videoURL)
	if s.session.Phase().CanAsk() {
		s.view.ShowQASection()
	}

	s.notify(s.text(MsgTranscriptExtracted), model.NotificationSuccess)
	return nil
}

// showVideoPreview shows the preview card when the URL carries a recognizable
// video ID; other URL shapes show nothing
func (s *Service) showVideoPreview(videoURL string) {
	videoID, ok := platform.ExtractVideoID(videoURL)
	if !ok {
		log.Printf("No embeddable video ID in URL: %s", videoURL)
		return
	}

	preview := NewVideoPreview(videoID)
	s.view.ShowVideoPreview(preview)

	if s.videos != nil {
		go s.lookupVideoDetails(preview)
	}
}

// lookupVideoDetails fills in the preview title, author and thumbnail;
// failures are only logged
func (s *Service) lookupVideoDetails(preview VideoPreview) {
	ctx := context.Background()

	info, err := s.videos.LookupVideo(ctx, preview.VideoID)
	if err != nil {
		log.Printf("Failed to get video info for ID %s: %v", preview.VideoID, err)
		info = &platform.VideoInfo{}
	}
	if info.Title != "" {
		s.view.UpdateVideoTitle(preview.VideoID, info.Title, info.AuthorName)
	}

	thumbnailURL := info.ThumbnailURL
	if thumbnailURL == "" {
		thumbnailURL = preview.ThumbnailURL
	}
	image, err := s.videos.FetchThumbnail(ctx, thumbnailURL)
	if err != nil {
		log.Printf("Failed to load thumbnail for ID %s: %v", preview.VideoID, err)
		return
	}
	s.view.ShowThumbnail(preview.VideoID, image)
}

// AskQuestion submits question about the held transcript. Empty questions
// and a missing transcript are rejected locally.
func (s *Service) AskQuestion(ctx context.Context, rawQuestion string) error {
	question := strings.TrimSpace(rawQuestion)
	if question == "" {
		s.notify(s.text(MsgPleaseEnterQuestion), model.NotificationError)
		return ErrEmptyQuestion
	}

	if !s.session.Phase().CanAsk() {
		s.notify(s.text(MsgExtractFirst), model.NotificationError)
		return ErrNoTranscript
	}
	transcript := s.session.Transcript()

	s.view.SetBusy(ActionAsk, true)
	defer s.view.SetBusy(ActionAsk, false)

	resp, err := s.backend.AskQuestion(ctx, question, transcript)
	if err != nil {
		log.Printf("Ask question error: %v", err)
		s.notify(err.Error(), model.NotificationError)
		return fmt.Errorf("ask question: %w", err)
	}

	if !resp.Success {
		serverErr := &ServerError{Message: resp.Error}
		log.Printf("Backend rejected question: %s", resp.Error)
		s.notifyServerError(serverErr)
		return serverErr
	}

	s.session.PushHistoryEntry(question, resp.Answer, s.now())
	s.view.ShowAnswer(question, resp.Answer)
	s.renderHistory()
	s.view.ClearQuestion()

	s.notify(s.text(MsgAnswerReceived), model.NotificationSuccess)
	return nil
}

// ClearHistory empties the chat history. The transcript stays loaded.
func (s *Service) ClearHistory() {
	cleared := s.session.HistoryLen()
	s.session.ClearHistory()
	log.Printf("Chat history cleared: %d entries", cleared)
	s.renderHistory()
	s.notify(s.text(MsgHistoryCleared), model.NotificationInfo)
}

// RenderHistory re-renders the history from the session
func (s *Service) RenderHistory() {
	s.renderHistory()
}

func (s *Service) renderHistory() {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	s.view.RenderHistory(model.BuildHistoryItems(s.session.History()))
}

// DownloadTranscript saves the held transcript as transcript_<id>.txt and
// returns the written path
func (s *Service) DownloadTranscript() (string, error) {
	if !s.session.HasTranscript() {
		s.notify(s.text(MsgNoTranscriptDownload), model.NotificationError)
		return "", ErrNoTranscript
	}
	transcript := s.session.Transcript()

	if s.saver == nil {
		err := errors.New("no download destination configured")
		s.notify(s.text(MsgDownloadFailed)+": "+err.Error(), model.NotificationError)
		return "", err
	}

	filename := s.session.DownloadFilename()
	path, err := s.saver.Save(filename, transcript)
	if err != nil {
		log.Printf("Failed to save transcript %s: %v", filename, err)
		s.notify(s.text(MsgDownloadFailed)+": "+err.Error(), model.NotificationError)
		return "", fmt.Errorf("save transcript: %w", err)
	}

	log.Printf("Transcript saved to %s", path)
	s.notify(s.text(MsgTranscriptDownloaded), model.NotificationSuccess)
	return path, nil
}

// CheckBackend calls the backend health endpoint and warns when it is
// unreachable or cannot answer questions
func (s *Service) CheckBackend(ctx context.Context) error {
	health, err := s.backend.Health(ctx)
	if err != nil {
		log.Printf("Backend health check failed: %v", err)
		s.notify(s.text(MsgBackendUnreachable)+": "+err.Error(), model.NotificationWarning)
		return fmt.Errorf("health check: %w", err)
	}

	log.Printf("Backend health: status=%s openai_api_key=%s", health.Status, health.OpenAIAPIKey)
	if !health.AnsweringConfigured() {
		s.notify(s.text(MsgAnsweringUnconfigured), model.NotificationWarning)
	}
	return nil
}

func (s *Service) notifyServerError(err *ServerError) {
	message := err.Message
	if message == "" {
		message = s.text(MsgUnknownError)
	}
	s.notify(s.text(MsgErrorPrefix)+message, model.NotificationError)
}

func (s *Service) notify(message string, kind model.NotificationType) {
	if s.notifier == nil {
		log.Printf("[%s] %s", kind, message)
		return
	}
	s.notifier.Notify(message, kind)
}

// text translates key, falling back to the English default
func (s *Service) text(key string) string {
	if s.texts != nil {
		if text := s.texts.GetText(key); text != "" && text != key {
			return text
		}
	}
	return DefaultText(key)
}
