package feed

import (
	"context"

	"github.com/Paoox/redsocial-desktop/internal/model"
)

// PostLister defines the backend calls the feed service needs.
type PostLister interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListUserPosts(ctx context.Context, userID int64) ([]model.Post, error)
}
