package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOEmbedService_LookupVideo(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc123", r.URL.Query().Get("url"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_ = json.NewEncoder(w).Encode(VideoInfo{Title: "Never Gonna Give You Up", AuthorName: "Rick Astley"})
	}))
	defer srv.Close()

	svc := NewOEmbedService()
	svc.SetEndpoint(srv.URL)

	info, err := svc.LookupVideo(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", info.Title)
	assert.Equal(t, "Rick Astley", info.AuthorName)

	_, err = svc.LookupVideo(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "second lookup should be served from cache")
}

func TestOEmbedService_LookupVideo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewOEmbedService()
	svc.SetEndpoint(srv.URL)

	_, err := svc.LookupVideo(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not Found")
}

func TestOEmbedService_LookupVideo_EmptyID(t *testing.T) {
	_, err := NewOEmbedService().LookupVideo(context.Background(), "")
	assert.Error(t, err)
}

func TestOEmbedService_FetchThumbnail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vi/abc123/hqdefault.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	svc := NewOEmbedService()

	data, err := svc.FetchThumbnail(context.Background(), srv.URL+"/vi/abc123/hqdefault.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	_, err = svc.FetchThumbnail(context.Background(), srv.URL+"/vi/missing/hqdefault.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	_, err = svc.FetchThumbnail(context.Background(), "")
	assert.Error(t, err)
}
