package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Paoox/redsocial-desktop/internal/model"
)

// loginRequest is the body for POST /usuarios/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// resetPasswordRequest is the body for PUT /usuarios/reset-password.
type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// avatarResponse is the body returned by the avatar upload endpoint.
type avatarResponse struct {
	URL string `json:"url"`
}

// ListUsers fetches all user summaries.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, "/usuarios", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user summary by id.
func (c *Client) GetUser(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, fmt.Sprintf("/usuarios/%d", id), &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Register creates an account. Duplicate email or nickname comes back as an
// HTTP 409 whose body names the conflicting field; see ConflictField.
func (c *Client) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	var created model.User
	if err := c.sendJSON(ctx, http.MethodPost, "/usuarios", reg, &created); err != nil {
		return model.User{}, err
	}
	return created, nil
}

// UpdateUser replaces the user's profile fields and returns the updated
// record. The caller is responsible for refreshing the cached session copy.
func (c *Client) UpdateUser(ctx context.Context, id int64, upd model.ProfileUpdate) (model.User, error) {
	var updated model.User
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d", id), upd, &updated); err != nil {
		return model.User{}, err
	}
	return updated, nil
}

// DeleteUser removes the account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), "", nil, nil)
}

// UploadAvatar sends an avatar image as multipart form data and returns the
// stored file's URL (typically server-relative under /uploads/).
func (c *Client) UploadAvatar(ctx context.Context, id int64, fileName string, file io.Reader) (string, error) {
	var resp avatarResponse
	err := c.sendMultipart(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/avatar", id),
		nil, "archivo", fileName, file, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}

// Login authenticates with email and password. On success the returned
// session holds the opaque token and the user snapshot; persisting it is
// the caller's job. On failure the backend's plain-text reason is carried
// in the returned *Error.
func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	var session model.Session
	err := c.sendJSON(ctx, http.MethodPost, "/usuarios/login",
		loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return model.Session{}, err
	}
	return session, nil
}

// CheckEmail reports whether an account exists for the given email.
// The backend answers 200 for a known address and an error status otherwise.
func (c *Client) CheckEmail(ctx context.Context, email string) error {
	return c.getJSON(ctx, "/usuarios/email/"+url.PathEscape(email), nil)
}

// ResetPassword replaces the password of the account identified by email.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	return c.sendJSON(ctx, http.MethodPut, "/usuarios/reset-password",
		resetPasswordRequest{Email: email, NewPassword: newPassword}, nil)
}
