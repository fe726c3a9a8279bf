package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/anatolykoptev/go-kit/env"

	"github.com/ytget/yt-transcript-qa/internal/platform"
)

// Environment variables that seed the defaults
const (
	EnvBackendURL     = "YTQA_BACKEND_URL"
	EnvRequestTimeout = "YTQA_REQUEST_TIMEOUT"
	EnvDownloadDir    = "YTQA_DOWNLOAD_DIR"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL      = "backend_url"
	KeyDownloadDir     = "download_directory"
	KeyLanguage        = "app_language"
	KeyRequestTimeout  = "request_timeout_seconds"
	KeyRevealAfterSave = "reveal_after_download"
)

// Default values
const (
	DefaultBackendURL      = "http://127.0.0.1:8000"
	DefaultLanguage        = "system"
	DefaultRevealAfterSave = false
	MaxRequestTimeout      = 10 * time.Minute
	fallbackDownloadDir    = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the transcript backend base URL. A stored preference
// wins over YTQA_BACKEND_URL.
func (s *Settings) GetBackendURL() string {
	url := strings.TrimSpace(s.app.Preferences().String(KeyBackendURL))
	if url == "" {
		return env.Str(EnvBackendURL, DefaultBackendURL)
	}
	return url
}

// SetBackendURL stores the backend base URL; blank resets to the default
func (s *Settings) SetBackendURL(url string) {
	s.app.Preferences().SetString(KeyBackendURL, strings.TrimSpace(url))
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir != "" {
		return dir
	}

	dir = env.Str(EnvDownloadDir, "")
	if dir == "" {
		homeDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			homeDir = fallbackDownloadDir
		}
		dir = homeDir
	}
	s.SetDownloadDirectory(dir)
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetRequestTimeout returns the per-request backend timeout. Zero means none.
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().IntWithFallback(KeyRequestTimeout, -1)
	if seconds < 0 {
		return clampTimeout(env.Duration(EnvRequestTimeout, 0))
	}
	return clampTimeout(time.Duration(seconds) * time.Second)
}

// SetRequestTimeout stores the backend timeout, rounded down to seconds
func (s *Settings) SetRequestTimeout(timeout time.Duration) {
	timeout = clampTimeout(timeout)
	s.app.Preferences().SetInt(KeyRequestTimeout, int(timeout/time.Second))
}

func clampTimeout(timeout time.Duration) time.Duration {
	if timeout < 0 {
		return 0
	}
	if timeout > MaxRequestTimeout {
		return MaxRequestTimeout
	}
	return timeout
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterDownload returns whether a saved transcript is shown in the file manager
func (s *Settings) GetRevealAfterDownload() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterDownload sets whether a saved transcript is shown in the file manager
func (s *Settings) SetRevealAfterDownload(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
