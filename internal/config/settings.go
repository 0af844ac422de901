package config

import (
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL     = "backend_url"
	KeyRequestTimeout = "request_timeout_sec"
	KeyLanguage       = "app_language"
	KeyFeedShuffle    = "feed_shuffle"
	KeyConfirmDelete  = "confirm_before_delete"
)

// EnvBackendURL overrides the stored backend origin when set. A .env file is
// honored at startup so development setups can point at a local backend.
const EnvBackendURL = "REDSOCIAL_BACKEND_URL"

// Default values
const (
	DefaultBackendURL     = "http://localhost:8080"
	DefaultRequestTimeout = 15
	MinRequestTimeout     = 5
	MaxRequestTimeout     = 60
	DefaultLanguage       = "system"
	DefaultFeedShuffle    = true
	DefaultConfirmDelete  = true
)

// Settings manages application configuration on top of Fyne preferences,
// the desktop analog of the browser's persistent storage.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the backend origin used for every API call and for
// resolving server-relative asset paths. The environment variable wins over
// the stored preference; the value never carries a trailing slash.
func (s *Settings) GetBackendURL() string {
	if env := strings.TrimSpace(os.Getenv(EnvBackendURL)); env != "" {
		return strings.TrimRight(env, "/")
	}

	stored := s.app.Preferences().String(KeyBackendURL)
	if stored == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return strings.TrimRight(stored, "/")
}

// SetBackendURL stores the backend origin.
func (s *Settings) SetBackendURL(origin string) {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		origin = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, origin)
}

// GetRequestTimeout returns the per-request HTTP timeout.
func (s *Settings) GetRequestTimeout() time.Duration {
	secs := s.app.Preferences().Int(KeyRequestTimeout)
	if secs <= 0 {
		s.SetRequestTimeoutSec(DefaultRequestTimeout)
		return DefaultRequestTimeout * time.Second
	}
	return time.Duration(secs) * time.Second
}

// SetRequestTimeoutSec sets the per-request HTTP timeout in seconds,
// clamped to a sane range.
func (s *Settings) SetRequestTimeoutSec(secs int) {
	if secs < MinRequestTimeout {
		secs = MinRequestTimeout
	}
	if secs > MaxRequestTimeout {
		secs = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, secs)
}

// GetLanguage returns the configured language.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language.
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options.
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}

// GetFeedShuffle returns whether the home feed is shuffled on load.
func (s *Settings) GetFeedShuffle() bool {
	return s.app.Preferences().BoolWithFallback(KeyFeedShuffle, DefaultFeedShuffle)
}

// SetFeedShuffle sets whether the home feed is shuffled on load.
func (s *Settings) SetFeedShuffle(shuffle bool) {
	s.app.Preferences().SetBool(KeyFeedShuffle, shuffle)
}

// GetConfirmBeforeDelete returns whether destructive actions ask for
// confirmation first.
func (s *Settings) GetConfirmBeforeDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmBeforeDelete sets whether destructive actions ask for
// confirmation first.
func (s *Settings) SetConfirmBeforeDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}
