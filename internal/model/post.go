package model

import (
	"strings"
	"time"
)

// Post is a snapshot of one publication as returned by the backend.
// The embedded author summary is denormalized server-side; the client never
// joins it locally.
type Post struct {
	ID        int64     `json:"id"`
	Author    User      `json:"usuario"`
	Content   string    `json:"contenido"`
	ImageURL  string    `json:"imagenUrl,omitempty"`
	CreatedAt time.Time `json:"fechaCreacion"`
	Likes     int       `json:"likes"`
	Reactions int       `json:"reacciones"`
}

// OwnedBy reports whether userID is the post's author. This gates which
// action buttons are rendered; it is a UI convenience, not a security
// boundary.
func (p *Post) OwnedBy(userID int64) bool {
	return userID != 0 && p.Author.ID == userID
}

// ImageSource resolves the attached image reference against the backend
// origin, mirroring User.AvatarSource.
func (p *Post) ImageSource(origin string) string {
	return ResolveAssetURL(origin, p.ImageURL)
}

// CreatedShort returns the creation date formatted for the post header.
func (p *Post) CreatedShort() string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return p.CreatedAt.Format("Jan 2, 2006")
}

// MatchesSearch reports whether the post's content or author matches
// term, case-insensitively. An empty term matches everything.
func (p *Post) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Content), term) ||
		strings.Contains(strings.ToLower(p.Author.Name), term) ||
		strings.Contains(strings.ToLower(p.Author.Nickname), term)
}
