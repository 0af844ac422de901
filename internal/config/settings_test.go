package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	origin := settings.GetBackendURL()
	if origin != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, origin)
	}

	// Test setting custom value
	settings.SetBackendURL("https://backend-red-social.fly.dev/")

	retrieved := settings.GetBackendURL()
	if retrieved != "https://backend-red-social.fly.dev" {
		t.Errorf("Expected trailing slash to be trimmed, got %s", retrieved)
	}

	// Empty value falls back to the default
	settings.SetBackendURL("   ")
	if settings.GetBackendURL() != DefaultBackendURL {
		t.Error("Empty backend URL should fall back to the default")
	}
}

func TestBackendURLEnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetBackendURL("http://stored:8080")
	t.Setenv(EnvBackendURL, "http://from-env:9090/")

	if got := settings.GetBackendURL(); got != "http://from-env:9090" {
		t.Errorf("Expected env override http://from-env:9090, got %s", got)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	timeout := settings.GetRequestTimeout()
	if timeout != DefaultRequestTimeout*time.Second {
		t.Errorf("Expected default timeout %ds, got %v", DefaultRequestTimeout, timeout)
	}

	// Test setting custom value
	settings.SetRequestTimeoutSec(30)
	if settings.GetRequestTimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", settings.GetRequestTimeout())
	}

	// Test boundary values
	settings.SetRequestTimeoutSec(1) // Should be clamped to minimum
	if settings.GetRequestTimeout() != MinRequestTimeout*time.Second {
		t.Error("Timeout should be clamped to minimum")
	}

	settings.SetRequestTimeoutSec(600) // Should be clamped to maximum
	if settings.GetRequestTimeout() != MaxRequestTimeout*time.Second {
		t.Error("Timeout should be clamped to maximum")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("es")
	if settings.GetLanguage() != "es" {
		t.Errorf("Expected language 'es', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "es"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestFeedShuffle(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFeedShuffle() != DefaultFeedShuffle {
		t.Errorf("Expected default feed shuffle %v", DefaultFeedShuffle)
	}

	settings.SetFeedShuffle(false)
	if settings.GetFeedShuffle() {
		t.Error("Expected feed shuffle to be disabled")
	}
}

func TestConfirmBeforeDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetConfirmBeforeDelete() != DefaultConfirmDelete {
		t.Errorf("Expected default confirm-before-delete %v", DefaultConfirmDelete)
	}

	settings.SetConfirmBeforeDelete(false)
	if settings.GetConfirmBeforeDelete() {
		t.Error("Expected confirm-before-delete to be disabled")
	}
}
