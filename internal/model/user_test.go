package model

import (
	"strings"
	"testing"
	"time"
)

func TestUser_AvatarSource(t *testing.T) {
	tests := []struct {
		avatarURL string
		origin    string
		expected  string
	}{
		{"/uploads/avatar-1.png", "http://localhost:8080", "http://localhost:8080/uploads/avatar-1.png"},
		{"https://i.pravatar.cc/150?img=3", "http://localhost:8080", "https://i.pravatar.cc/150?img=3"},
		{"", "http://localhost:8080", ""},
	}

	for _, test := range tests {
		user := &User{AvatarURL: test.avatarURL}
		result := user.AvatarSource(test.origin)
		if result != test.expected {
			t.Errorf("AvatarSource(%q) with avatarURL=%q = %q, expected %q",
				test.origin, test.avatarURL, result, test.expected)
		}
	}
}

func TestUser_Handle(t *testing.T) {
	user := &User{Nickname: "paoox"}
	if got := user.Handle(); got != "@paoox" {
		t.Errorf("Handle() = %q, expected %q", got, "@paoox")
	}

	anonymous := &User{}
	if got := anonymous.Handle(); got != "" {
		t.Errorf("Handle() with empty nickname = %q, expected empty", got)
	}
}

func TestUser_Dates(t *testing.T) {
	user := &User{RegisteredAt: time.Date(2024, time.December, 1, 8, 30, 0, 0, time.UTC)}

	if got := user.MemberSince(); got != "December 1, 2024" {
		t.Errorf("MemberSince() = %q, expected %q", got, "December 1, 2024")
	}

	if got := user.RegisteredShort(); got != "01/12/2024" {
		t.Errorf("RegisteredShort() = %q, expected %q", got, "01/12/2024")
	}

	empty := &User{}
	if empty.MemberSince() != "" || empty.RegisteredShort() != "" {
		t.Error("Expected empty date strings for zero registration time")
	}
}

func TestNewRegistration(t *testing.T) {
	reg := NewRegistration("Paola", "PaOox", "Paola@Example.COM", "Secret1", "12345678")

	if reg.Nickname != "paoox" {
		t.Errorf("Expected lowered nickname, got %q", reg.Nickname)
	}

	if reg.Email != "paola@example.com" {
		t.Errorf("Expected lowered email, got %q", reg.Email)
	}

	if reg.Views < 1 || reg.Views > 100 {
		t.Errorf("Expected seeded view count in [1,100], got %d", reg.Views)
	}

	if !strings.HasPrefix(reg.AvatarURL, "https://i.pravatar.cc/150?img=") {
		t.Errorf("Expected placeholder avatar URL, got %q", reg.AvatarURL)
	}

	if reg.RegisteredAt.IsZero() {
		t.Error("Expected registration timestamp to be set")
	}
}

func TestEffectivePassword(t *testing.T) {
	if got := EffectivePassword(""); got != PasswordFallback {
		t.Errorf("Expected fallback for a blank password, got %q", got)
	}

	if got := EffectivePassword("Secret1"); got != "Secret1" {
		t.Errorf("Expected typed password to pass through, got %q", got)
	}
}

func TestLoadState(t *testing.T) {
	if !LoadStateLoading.InFlight() {
		t.Error("Loading should be in flight")
	}

	if LoadStateIdle.InFlight() || LoadStateLoaded.InFlight() {
		t.Error("Only Loading is in flight")
	}

	if !LoadStateLoaded.Settled() || !LoadStateFailed.Settled() {
		t.Error("Loaded and Failed should be settled")
	}

	if LoadStateIdle.Settled() || LoadStateLoading.Settled() {
		t.Error("Idle and Loading should not be settled")
	}
}

func TestSession_LoggedIn(t *testing.T) {
	if (Session{}).LoggedIn() {
		t.Error("Empty session should not be logged in")
	}

	session := Session{Token: "opaque", User: User{ID: 1}}
	if !session.LoggedIn() {
		t.Error("Session with token should be logged in")
	}
}
