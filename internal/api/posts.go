package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Paoox/redsocial-desktop/internal/model"
)

// ListPosts fetches the global feed.
func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.getJSON(ctx, "/publicaciones", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListUserPosts fetches the posts owned by one user.
func (c *Client) ListUserPosts(ctx context.Context, userID int64) ([]model.Post, error) {
	var posts []model.Post
	if err := c.getJSON(ctx, fmt.Sprintf("/publicaciones/usuario/%d", userID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes a new post for userID. The optional image travels in
// the same multipart request under the "imagen" field.
func (c *Client) CreatePost(ctx context.Context, userID int64, content, imageName string, image io.Reader) (model.Post, error) {
	fields := map[string]string{
		"contenido": content,
		"usuarioId": strconv.FormatInt(userID, 10),
	}

	var created model.Post
	err := c.sendMultipart(ctx, http.MethodPost, "/publicaciones/crear",
		fields, "imagen", imageName, image, &created)
	if err != nil {
		return model.Post{}, err
	}
	return created, nil
}

// UpdatePost edits a post's content and image. Passing a nil image keeps
// the current one unless removeImage asks for it to be dropped. The
// backend returns the updated post for splice-by-id refresh.
func (c *Client) UpdatePost(ctx context.Context, id int64, content string, imageName string, image io.Reader, removeImage bool) (model.Post, error) {
	fields := map[string]string{
		"contenido":      content,
		"eliminarImagen": strconv.FormatBool(removeImage),
	}

	var updated model.Post
	err := c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/publicaciones/%d", id),
		fields, "imagen", imageName, image, &updated)
	if err != nil {
		return model.Post{}, err
	}
	return updated, nil
}

// LikePost increments the like counter and returns the updated post.
func (c *Client) LikePost(ctx context.Context, id int64) (model.Post, error) {
	var updated model.Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/publicaciones/%d/like", id), "", nil, &updated); err != nil {
		return model.Post{}, err
	}
	return updated, nil
}

// ReactPost increments the reaction counter and returns the updated post.
func (c *Client) ReactPost(ctx context.Context, id int64) (model.Post, error) {
	var updated model.Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/publicaciones/%d/reaccion", id), "", nil, &updated); err != nil {
		return model.Post{}, err
	}
	return updated, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/publicaciones/eliminar/%d", id), "", nil, nil)
}
