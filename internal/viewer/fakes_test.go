package viewer

import (
	"context"
	"sync"

	"github.com/ytget/yt-transcript-qa/internal/api"
	"github.com/ytget/yt-transcript-qa/internal/model"
	"github.com/ytget/yt-transcript-qa/internal/platform"
)

type fakeBackend struct {
	mu sync.Mutex

	transcriptResp *api.TranscriptResponse
	transcriptErr  error
	answerResp     *api.AnswerResponse
	answerErr      error
	healthResp     *api.HealthResponse
	healthErr      error

	transcriptCalls []string
	questionCalls   []api.QuestionRequest
}

func (f *fakeBackend) FetchTranscript(ctx context.Context, videoURL string) (*api.TranscriptResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcriptCalls = append(f.transcriptCalls, videoURL)
	return f.transcriptResp, f.transcriptErr
}

func (f *fakeBackend) AskQuestion(ctx context.Context, question, transcript string) (*api.AnswerResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questionCalls = append(f.questionCalls, api.QuestionRequest{Question: question, Transcript: transcript})
	return f.answerResp, f.answerErr
}

func (f *fakeBackend) Health(ctx context.Context) (*api.HealthResponse, error) {
	return f.healthResp, f.healthErr
}

func (f *fakeBackend) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transcriptCalls), len(f.questionCalls)
}

type busyEvent struct {
	action Action
	busy   bool
}

type recordingView struct {
	mu sync.Mutex

	busy         []busyEvent
	transcript   string
	stats        model.TranscriptStats
	preview      *VideoPreview
	titles       chan string
	thumbnails   chan string
	qaVisible    bool
	answers      [][2]string
	cleared      int
	historyCalls [][]model.HistoryItem
}

func newRecordingView() *recordingView {
	return &recordingView{titles: make(chan string, 1), thumbnails: make(chan string, 1)}
}

func (v *recordingView) SetBusy(action Action, busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = append(v.busy, busyEvent{action, busy})
}

func (v *recordingView) ShowTranscript(transcript string, stats model.TranscriptStats) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.transcript = transcript
	v.stats = stats
}

func (v *recordingView) ShowVideoPreview(preview VideoPreview) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.preview = &preview
}

func (v *recordingView) UpdateVideoTitle(videoID, title, author string) {
	v.titles <- videoID + ":" + title + ":" + author
}

func (v *recordingView) ShowThumbnail(videoID string, image []byte) {
	v.thumbnails <- videoID + ":" + string(image)
}

func (v *recordingView) ShowQASection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.qaVisible = true
}

func (v *recordingView) ShowAnswer(question, answer string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.answers = append(v.answers, [2]string{question, answer})
}

func (v *recordingView) ClearQuestion() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cleared++
}

func (v *recordingView) RenderHistory(items []model.HistoryItem) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.historyCalls = append(v.historyCalls, items)
}

func (v *recordingView) lastHistory() []model.HistoryItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.historyCalls) == 0 {
		return nil
	}
	return v.historyCalls[len(v.historyCalls)-1]
}

type notification struct {
	message string
	kind    model.NotificationType
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []notification
}

func (n *recordingNotifier) Notify(message string, kind model.NotificationType) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, notification{message, kind})
}

func (n *recordingNotifier) last() notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.items) == 0 {
		return notification{}
	}
	return n.items[len(n.items)-1]
}

type fakeVideoLookup struct {
	info     *platform.VideoInfo
	err      error
	thumb    []byte
	thumbErr error

	mu         sync.Mutex
	thumbnails []string
}

func (f *fakeVideoLookup) LookupVideo(ctx context.Context, videoID string) (*platform.VideoInfo, error) {
	return f.info, f.err
}

func (f *fakeVideoLookup) FetchThumbnail(ctx context.Context, thumbnailURL string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.thumbnails = append(f.thumbnails, thumbnailURL)
	return f.thumb, f.thumbErr
}

func (f *fakeVideoLookup) requestedThumbnails() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.thumbnails...)
}

type mapTranslator map[string]string

func (m mapTranslator) GetText(key string) string {
	if text, ok := m[key]; ok {
		return text
	}
	return key
}
