package model

import (
	"testing"
	"time"
)

func TestPost_OwnedBy(t *testing.T) {
	post := &Post{ID: 7, Author: User{ID: 42}}

	if !post.OwnedBy(42) {
		t.Error("Expected post to be owned by its author")
	}

	if post.OwnedBy(43) {
		t.Error("Expected post not to be owned by a different user")
	}

	if post.OwnedBy(0) {
		t.Error("Expected zero user id (logged out) to own nothing")
	}
}

func TestPost_ImageSource(t *testing.T) {
	tests := []struct {
		imageURL string
		origin   string
		expected string
	}{
		{"/uploads/post-9.png", "http://localhost:8080", "http://localhost:8080/uploads/post-9.png"},
		{"/uploads/post-9.png", "http://localhost:8080/", "http://localhost:8080/uploads/post-9.png"},
		{"https://cdn.example.com/p.png", "http://localhost:8080", "https://cdn.example.com/p.png"},
		{"", "http://localhost:8080", ""},
	}

	for _, test := range tests {
		post := &Post{ImageURL: test.imageURL}
		result := post.ImageSource(test.origin)
		if result != test.expected {
			t.Errorf("ImageSource(%q) with imageURL=%q = %q, expected %q",
				test.origin, test.imageURL, result, test.expected)
		}
	}
}

func TestPost_MatchesSearch(t *testing.T) {
	post := &Post{
		Content: "Hola Mundo desde la red",
		Author:  User{Name: "Paola", Nickname: "paoox"},
	}

	tests := []struct {
		term     string
		expected bool
	}{
		{"", true},
		{"mundo", true},
		{"HOLA", true},
		{"paola", true},
		{"PAOOX", true},
		{"adios", false},
	}

	for _, test := range tests {
		if got := post.MatchesSearch(test.term); got != test.expected {
			t.Errorf("MatchesSearch(%q) = %v, expected %v", test.term, got, test.expected)
		}
	}
}

func TestPost_CreatedShort(t *testing.T) {
	post := &Post{CreatedAt: time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)}

	if got := post.CreatedShort(); got != "Mar 9, 2025" {
		t.Errorf("CreatedShort() = %q, expected %q", got, "Mar 9, 2025")
	}

	empty := &Post{}
	if got := empty.CreatedShort(); got != "" {
		t.Errorf("CreatedShort() on zero time = %q, expected empty", got)
	}
}
