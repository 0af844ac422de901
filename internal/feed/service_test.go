package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Paoox/redsocial-desktop/internal/model"
)

type fakeLister struct {
	posts     []model.Post
	userPosts map[int64][]model.Post
	err       error
}

func (f *fakeLister) ListPosts(ctx context.Context) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.posts, f.err
}

func (f *fakeLister) ListUserPosts(ctx context.Context, userID int64) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.userPosts[userID], f.err
}

func TestRefreshLoadsPosts(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{
		{ID: 1, Content: "primero"},
		{ID: 2, Content: "segundo"},
	}}

	service := NewService(lister)

	updates := 0
	service.SetUpdateCallback(func() { updates++ })

	service.Refresh(context.Background())

	if service.State() != model.LoadStateLoaded {
		t.Errorf("Expected state %s, got %s", model.LoadStateLoaded, service.State())
	}
	if len(service.Posts()) != 2 {
		t.Errorf("Expected 2 posts, got %d", len(service.Posts()))
	}
	if updates < 2 {
		t.Errorf("Expected callbacks for loading and loaded, got %d", updates)
	}
}

func TestRefreshFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("backend down")}
	service := NewService(lister)

	service.Refresh(context.Background())

	if service.State() != model.LoadStateFailed {
		t.Errorf("Expected state %s, got %s", model.LoadStateFailed, service.State())
	}
	if service.LastError() == nil {
		t.Error("Expected LastError to be set")
	}
}

func TestRefreshRecoversAfterFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("backend down")}
	service := NewService(lister)

	service.Refresh(context.Background())

	lister.err = nil
	lister.posts = []model.Post{{ID: 1}}
	service.Refresh(context.Background())

	if service.State() != model.LoadStateLoaded {
		t.Errorf("Expected state %s, got %s", model.LoadStateLoaded, service.State())
	}
	if service.LastError() != nil {
		t.Errorf("Expected LastError to be cleared, got %v", service.LastError())
	}
}

func TestRefreshCancelledKeepsPreviousPosts(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{{ID: 1}}}
	service := NewService(lister)
	service.Refresh(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	service.Refresh(ctx)

	if service.State() != model.LoadStateLoaded {
		t.Errorf("Expected state %s after cancelled refresh, got %s", model.LoadStateLoaded, service.State())
	}
	if len(service.Posts()) != 1 {
		t.Errorf("Expected cached posts to survive, got %d", len(service.Posts()))
	}
}

func TestRefreshUserSortsNewestFirst(t *testing.T) {
	now := time.Now()
	lister := &fakeLister{userPosts: map[int64][]model.Post{
		7: {
			{ID: 1, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: 2, CreatedAt: now},
			{ID: 3, CreatedAt: now.Add(-1 * time.Hour)},
		},
	}}

	service := NewService(lister)
	service.RefreshUser(context.Background(), 7)

	posts := service.Posts()
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	if posts[0].ID != 2 || posts[1].ID != 3 || posts[2].ID != 1 {
		t.Errorf("Expected newest-first order [2 3 1], got [%d %d %d]", posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestApplyUpdateSplicesOnlyMatchingPost(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{
		{ID: 1, Content: "uno", Likes: 0},
		{ID: 2, Content: "dos", Likes: 5},
	}}

	service := NewService(lister)
	service.Refresh(context.Background())

	service.ApplyUpdate(model.Post{ID: 1, Content: "uno", Likes: 1})

	posts := service.Posts()
	if posts[0].Likes != 1 {
		t.Errorf("Expected updated post to have 1 like, got %d", posts[0].Likes)
	}
	if posts[1].Likes != 5 || posts[1].Content != "dos" {
		t.Errorf("Expected sibling post untouched, got %+v", posts[1])
	}
}

func TestApplyUpdateUnknownIDIsIgnored(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{{ID: 1}}}
	service := NewService(lister)
	service.Refresh(context.Background())

	updates := 0
	service.SetUpdateCallback(func() { updates++ })

	service.ApplyUpdate(model.Post{ID: 99})

	if updates != 0 {
		t.Errorf("Expected no callback for unknown post, got %d", updates)
	}
	if len(service.Posts()) != 1 {
		t.Errorf("Expected cache unchanged, got %d posts", len(service.Posts()))
	}
}

func TestPrependPutsPostFirst(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{{ID: 1}}}
	service := NewService(lister)
	service.Refresh(context.Background())

	service.Prepend(model.Post{ID: 2})

	posts := service.Posts()
	if len(posts) != 2 || posts[0].ID != 2 {
		t.Errorf("Expected new post first, got %+v", posts)
	}
}

func TestRemove(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{{ID: 1}, {ID: 2}, {ID: 3}}}
	service := NewService(lister)
	service.Refresh(context.Background())

	service.Remove(2)

	posts := service.Posts()
	if len(posts) != 2 || posts[0].ID != 1 || posts[1].ID != 3 {
		t.Errorf("Expected posts [1 3], got %+v", posts)
	}

	// Removing a missing ID is a no-op
	service.Remove(99)
	if len(service.Posts()) != 2 {
		t.Errorf("Expected cache unchanged after removing unknown ID")
	}
}

func TestFilter(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{
		{ID: 1, Content: "Aprendiendo Go", Author: model.User{Name: "Paola", Nickname: "paoox"}},
		{ID: 2, Content: "dia de playa", Author: model.User{Name: "Luis", Nickname: "luigi"}},
	}}

	service := NewService(lister)
	service.Refresh(context.Background())

	if got := service.Filter("go"); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Expected content match for 'go', got %+v", got)
	}
	if got := service.Filter("LUIGI"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Expected nickname match for 'LUIGI', got %+v", got)
	}
	if got := service.Filter(""); len(got) != 2 {
		t.Errorf("Expected empty term to return all posts, got %d", len(got))
	}
	if got := service.Filter("nada"); len(got) != 0 {
		t.Errorf("Expected no matches, got %+v", got)
	}
}

func TestPostsReturnsCopy(t *testing.T) {
	lister := &fakeLister{posts: []model.Post{{ID: 1, Content: "original"}}}
	service := NewService(lister)
	service.Refresh(context.Background())

	posts := service.Posts()
	posts[0].Content = "mutated"

	if service.Posts()[0].Content != "original" {
		t.Error("Expected mutation of returned slice to not affect the cache")
	}
}
