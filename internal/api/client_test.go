package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeBackend serves the three backend routes with canned handlers
func newFakeBackend(t *testing.T, transcript, question, health http.HandlerFunc) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	if transcript != nil {
		r.HandleFunc(TranscriptPath, transcript).Methods(http.MethodPost)
	}
	if question != nil {
		r.HandleFunc(QuestionPath, question).Methods(http.MethodPost)
	}
	if health != nil {
		r.HandleFunc(HealthPath, health).Methods(http.MethodGet)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	c := NewClient("  http://127.0.0.1:8000/  ")
	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL())
}

func TestClient_FetchTranscript(t *testing.T) {
	var got TranscriptRequest
	srv := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ContentTypeJSON, r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, TranscriptResponse{Success: true, Transcript: "hello world", VideoID: "abc123"})
	}, nil, nil)

	c := NewClient(srv.URL)
	resp, err := c.FetchTranscript(context.Background(), "https://www.youtube.com/watch?v=abc123")

	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", got.URL)
	assert.True(t, resp.Success)
	assert.Equal(t, "hello world", resp.Transcript)
	assert.Equal(t, "abc123", resp.VideoID)
}

func TestClient_FetchTranscript_LogicalFailure(t *testing.T) {
	srv := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, TranscriptResponse{Success: false, Error: "Invalid YouTube URL."})
	}, nil, nil)

	resp, err := NewClient(srv.URL).FetchTranscript(context.Background(), "nope")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid YouTube URL.", resp.Error)
}

func TestClient_AskQuestion(t *testing.T) {
	var got QuestionRequest
	srv := newFakeBackend(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, AnswerResponse{Success: true, Answer: "42"})
	}, nil)

	resp, err := NewClient(srv.URL).AskQuestion(context.Background(), "what?", "the transcript")

	require.NoError(t, err)
	assert.Equal(t, "what?", got.Question)
	assert.Equal(t, "the transcript", got.Transcript)
	assert.Equal(t, "42", resp.Answer)
}

func TestClient_AskQuestion_NonJSONServerError(t *testing.T) {
	srv := newFakeBackend(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "Traceback: KeyError 'choices'")
	}, nil)

	_, err := NewClient(srv.URL).AskQuestion(context.Background(), "q", "t")

	require.Error(t, err)
	assert.Equal(t, "Traceback: KeyError 'choices'", err.Error())
}

func TestClient_Health(t *testing.T) {
	srv := newFakeBackend(t, nil, nil, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, HealthResponse{Status: "healthy", OpenAIAPIKey: APIKeyMissing, Message: "running"})
	})

	health, err := NewClient(srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.AnsweringConfigured())
}

func TestClient_WithTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, nil, nil)
	defer close(release)

	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.FetchTranscript(context.Background(), "https://youtu.be/abc")

	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestClient_UnknownRouteIsStatusError(t *testing.T) {
	srv := newFakeBackend(t, nil, nil, nil)

	_, err := NewClient(srv.URL).FetchTranscript(context.Background(), "x")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
