package feed

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/Paoox/redsocial-desktop/internal/logx"
	"github.com/Paoox/redsocial-desktop/internal/model"
)

// Service caches the loaded timeline and its load state.
type Service struct {
	api PostLister

	mu        sync.RWMutex
	state     model.LoadState
	prevState model.LoadState
	posts     []model.Post
	lastErr   error
	shuffle   bool
	onUpdate  func() // callback for UI updates
}

// NewService creates a new feed service.
func NewService(api PostLister) *Service {
	return &Service{
		api:   api,
		state: model.LoadStateIdle,
	}
}

// SetUpdateCallback sets the callback invoked after every state change.
func (s *Service) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetLister swaps the backend client, used when the backend URL or
// timeout changes at runtime.
func (s *Service) SetLister(api PostLister) {
	s.mu.Lock()
	s.api = api
	s.mu.Unlock()
}

// SetShuffle controls whether Refresh randomizes post order.
func (s *Service) SetShuffle(shuffle bool) {
	s.mu.Lock()
	s.shuffle = shuffle
	s.mu.Unlock()
}

// Refresh loads the global timeline. A cancelled context leaves the
// previous posts and state untouched.
func (s *Service) Refresh(ctx context.Context) {
	s.setLoading()

	s.mu.RLock()
	api := s.api
	s.mu.RUnlock()

	posts, err := api.ListPosts(ctx)
	if ctx.Err() != nil {
		logx.Debug("feed refresh cancelled")
		s.revertLoading()
		return
	}
	if err != nil {
		logx.Error(err, "feed refresh failed")
		s.setFailed(err)
		return
	}

	s.mu.Lock()
	if s.shuffle {
		rand.Shuffle(len(posts), func(i, j int) {
			posts[i], posts[j] = posts[j], posts[i]
		})
	}
	s.posts = posts
	s.state = model.LoadStateLoaded
	s.lastErr = nil
	s.mu.Unlock()

	s.notifyUpdate()
}

// RefreshUser loads a single user's posts, newest first.
func (s *Service) RefreshUser(ctx context.Context, userID int64) {
	s.setLoading()

	s.mu.RLock()
	api := s.api
	s.mu.RUnlock()

	posts, err := api.ListUserPosts(ctx, userID)
	if ctx.Err() != nil {
		logx.Debug("user feed refresh cancelled", "user_id", userID)
		s.revertLoading()
		return
	}
	if err != nil {
		logx.Error(err, "user feed refresh failed", "user_id", userID)
		s.setFailed(err)
		return
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	s.mu.Lock()
	s.posts = posts
	s.state = model.LoadStateLoaded
	s.lastErr = nil
	s.mu.Unlock()

	s.notifyUpdate()
}

// ApplyUpdate replaces the cached post with the same ID. Posts the
// cache does not hold are ignored, siblings are never touched.
func (s *Service) ApplyUpdate(post model.Post) {
	s.mu.Lock()
	replaced := false
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.notifyUpdate()
	}
}

// Prepend puts a freshly created post at the top of the cache.
func (s *Service) Prepend(post model.Post) {
	s.mu.Lock()
	s.posts = append([]model.Post{post}, s.posts...)
	s.mu.Unlock()

	s.notifyUpdate()
}

// Remove drops the post with the given ID from the cache.
func (s *Service) Remove(postID int64) {
	s.mu.Lock()
	removed := false
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notifyUpdate()
	}
}

// Posts returns a copy of the cached posts.
func (s *Service) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]model.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// Filter returns the cached posts whose content or author matches the
// search term. An empty term returns everything.
func (s *Service) Filter(term string) []model.Post {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Posts()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []model.Post
	for _, post := range s.posts {
		if post.MatchesSearch(term) {
			matched = append(matched, post)
		}
	}
	return matched
}

// State returns the current load state.
func (s *Service) State() model.LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastError returns the error from the last failed load, if any.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Service) setLoading() {
	s.mu.Lock()
	s.prevState = s.state
	s.state = model.LoadStateLoading
	s.mu.Unlock()

	s.notifyUpdate()
}

// revertLoading restores the state a cancelled load started from.
func (s *Service) revertLoading() {
	s.mu.Lock()
	s.state = s.prevState
	s.mu.Unlock()

	s.notifyUpdate()
}

func (s *Service) setFailed(err error) {
	s.mu.Lock()
	s.state = model.LoadStateFailed
	s.lastErr = err
	s.mu.Unlock()

	s.notifyUpdate()
}

func (s *Service) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback()
	}
}
