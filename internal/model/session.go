package model

// Session is the logged-in identity held client-side: the opaque bearer
// token plus a denormalized user snapshot that may go stale until the next
// login or settings save.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"usuario"`
}

// LoggedIn reports whether the session represents an authenticated user.
// Presence of the token is the sole signal used by route guards.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
