package model

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// UploadsPrefix marks avatar and post image references that are relative to
// the backend origin rather than absolute URLs.
const UploadsPrefix = "/uploads/"

// Avatar placeholder pool used for newly registered accounts.
const (
	placeholderAvatarCount  = 70
	placeholderAvatarFormat = "https://i.pravatar.cc/150?img=%d"
)

// User is the backend's user summary as consumed by every view.
// The backend owns all invariants (uniqueness, counts); the client only
// holds snapshots of this record.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nombre"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	Phone        string    `json:"telefono"`
	Description  string    `json:"descripcion"`
	AvatarURL    string    `json:"avatarUrl"`
	RegisteredAt time.Time `json:"fechaRegistro"`
	Views        int       `json:"visualizaciones"`
}

// Handle returns the user's nickname in "@nickname" form for display.
func (u *User) Handle() string {
	if u.Nickname == "" {
		return ""
	}
	return "@" + u.Nickname
}

// AvatarSource resolves the avatar reference against the configured backend
// origin. Server-relative uploads are prefixed with the origin; absolute
// URLs pass through unchanged.
func (u *User) AvatarSource(origin string) string {
	return ResolveAssetURL(origin, u.AvatarURL)
}

// MemberSince returns the registration date formatted for the profile header.
func (u *User) MemberSince() string {
	if u.RegisteredAt.IsZero() {
		return ""
	}
	return u.RegisteredAt.Format("January 2, 2006")
}

// RegisteredShort returns the registration date in dd/mm/yyyy form for lists.
func (u *User) RegisteredShort() string {
	if u.RegisteredAt.IsZero() {
		return ""
	}
	return u.RegisteredAt.Format("02/01/2006")
}

// ResolveAssetURL prefixes server-relative upload paths with the backend
// origin. Anything else (absolute URL, empty string) is returned as-is.
func ResolveAssetURL(origin, ref string) string {
	if strings.HasPrefix(ref, UploadsPrefix) {
		return strings.TrimRight(origin, "/") + ref
	}
	return ref
}

// Registration is the request body for creating an account.
// Nickname and email are lowercased before submission; the backend reports
// conflicts on both.
type Registration struct {
	Name         string    `json:"nombre"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	Phone        string    `json:"telefono"`
	Views        int       `json:"visualizaciones"`
	RegisteredAt time.Time `json:"fechaRegistro"`
	AvatarURL    string    `json:"avatarUrl"`
}

// NewRegistration builds a registration request from form input, seeding the
// placeholder avatar and initial view count the way the original client did.
func NewRegistration(name, nickname, email, password, phone string) Registration {
	return Registration{
		Name:         name,
		Nickname:     strings.ToLower(nickname),
		Email:        strings.ToLower(email),
		Password:     password,
		Phone:        phone,
		Views:        rand.Intn(100) + 1,
		RegisteredAt: time.Now().UTC(),
		AvatarURL:    fmt.Sprintf(placeholderAvatarFormat, rand.Intn(placeholderAvatarCount)+1),
	}
}

// PasswordFallback is submitted in place of the real password, which the
// client never stores. The backend's PUT replaces the whole record, so an
// empty value would blank the stored password.
const PasswordFallback = "temporal"

// EffectivePassword returns the typed password, or PasswordFallback when
// the form left it blank.
func EffectivePassword(typed string) string {
	if typed == "" {
		return PasswordFallback
	}
	return typed
}

// ProfileUpdate is the request body for PUT /usuarios/{id}.
// The backend expects the full record; Password carries the stored value or
// a placeholder when the client never held one.
type ProfileUpdate struct {
	Name        string `json:"nombre"`
	Nickname    string `json:"nickname"`
	Phone       string `json:"telefono"`
	Email       string `json:"email"`
	Description string `json:"descripcion"`
	AvatarURL   string `json:"avatarUrl"`
	Password    string `json:"password"`
}
