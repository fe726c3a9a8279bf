package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ytget/yt-transcript-qa/internal/api"
)

// Timeout constants
const (
	DefaultOEmbedTimeout = 10 * time.Second
)

// MaxThumbnailBytes bounds the size of a downloaded thumbnail
const MaxThumbnailBytes = 2 << 20

// YouTubeOEmbedEndpoint is the public oEmbed endpoint
const YouTubeOEmbedEndpoint = "https://www.youtube.com/oembed"

// VideoInfo is the subset of the oEmbed payload shown in the preview
type VideoInfo struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// OEmbedService resolves video titles through YouTube oEmbed. Results are
// cached for the lifetime of the service.
type OEmbedService struct {
	endpoint string
	client   api.HTTPDoer
	timeout  time.Duration
	cache    sync.Map // videoID -> *VideoInfo
}

// NewOEmbedService creates a service against the public YouTube endpoint
func NewOEmbedService() *OEmbedService {
	return &OEmbedService{
		endpoint: YouTubeOEmbedEndpoint,
		client:   &http.Client{},
		timeout:  DefaultOEmbedTimeout,
	}
}

// SetEndpoint overrides the oEmbed endpoint
func (o *OEmbedService) SetEndpoint(endpoint string) {
	o.endpoint = endpoint
}

// SetHTTPClient overrides the HTTP client
func (o *OEmbedService) SetHTTPClient(client api.HTTPDoer) {
	if client != nil {
		o.client = client
	}
}

// LookupVideo returns oEmbed info for a video ID
func (o *OEmbedService) LookupVideo(ctx context.Context, videoID string) (*VideoInfo, error) {
	if videoID == "" {
		return nil, fmt.Errorf("empty video ID")
	}

	if cached, ok := o.cache.Load(videoID); ok {
		return cached.(*VideoInfo), nil
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("url", WatchURL(videoID))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create oEmbed request: %w", err)
	}

	info, err := api.FetchJSON[VideoInfo](o.client, req)
	if err != nil {
		return nil, fmt.Errorf("oEmbed lookup for %s failed: %w", videoID, err)
	}

	o.cache.Store(videoID, &info)
	return &info, nil
}

// FetchThumbnail downloads a preview image
func (o *OEmbedService) FetchThumbnail(ctx context.Context, thumbnailURL string) ([]byte, error) {
	if thumbnailURL == "" {
		return nil, fmt.Errorf("empty thumbnail URL")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnailURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thumbnail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("thumbnail request failed: HTTP %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxThumbnailBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}
	if len(data) > MaxThumbnailBytes {
		return nil, fmt.Errorf("thumbnail larger than %d bytes", MaxThumbnailBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty thumbnail")
	}
	return data, nil
}
