package platform

import (
	"fmt"
	"strings"
)

// URL markers recognized by ExtractVideoID
const (
	WatchMarker = "watch?v="
	ShortMarker = "youtu.be/"
)

// videoIDTerminators end the ID part of a URL
const videoIDTerminators = "&?"

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
	YouTubeEmbedURLTemplate = "https://www.youtube.com/embed/%s"
	YouTubeThumbURLTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"
)

// ExtractVideoID returns the text between a recognized marker and the next
// '&' or '?'. Only "watch?v=" and "youtu.be/" URLs are recognized; anything
// else yields ok=false.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, marker := range []string{WatchMarker, ShortMarker} {
		idx := strings.Index(rawURL, marker)
		if idx < 0 {
			continue
		}

		id := rawURL[idx+len(marker):]
		if end := strings.IndexAny(id, videoIDTerminators); end >= 0 {
			id = id[:end]
		}
		if id == "" {
			return "", false
		}
		return id, true
	}
	return "", false
}

// WatchURL returns the canonical watch URL for a video ID
func WatchURL(videoID string) string {
	return fmt.Sprintf(YouTubeVideoURLTemplate, videoID)
}

// EmbedURL returns the embeddable player URL for a video ID
func EmbedURL(videoID string) string {
	return fmt.Sprintf(YouTubeEmbedURLTemplate, videoID)
}

// ThumbnailURL returns the high quality thumbnail URL for a video ID
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(YouTubeThumbURLTemplate, videoID)
}
