package service

import (
	"context"

	"github.com/breadit-dev/breadit/shared/domain"
)

// --- Mock for FeedStorage ---

type MockFeedStorage struct {
	RecentPostsFunc func(ctx context.Context, limit, offset int) ([]domain.Post, error)
	calls           int
}

func (m *MockFeedStorage) RecentPosts(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	m.calls++
	if m.RecentPostsFunc != nil {
		return m.RecentPostsFunc(ctx, limit, offset)
	}
	return []domain.Post{}, nil
}

// --- Mock for UserStorage ---

type MockUserStorage struct {
	UserFunc           func(ctx context.Context, id domain.UserId) (domain.User, error)
	UpdateUsernameFunc func(ctx context.Context, id domain.UserId, username domain.Username) error
}

func (m *MockUserStorage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.UserFunc != nil {
		return m.UserFunc(ctx, id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockUserStorage) UpdateUsername(ctx context.Context, id domain.UserId, username domain.Username) error {
	if m.UpdateUsernameFunc != nil {
		return m.UpdateUsernameFunc(ctx, id, username)
	}
	return nil
}

// --- Observer spy ---

type spyObserver struct {
	feedPosts []int
	outcomes  []string
}

func (s *spyObserver) ObserveFeed(posts int) { s.feedPosts = append(s.feedPosts, posts) }
func (s *spyObserver) ObserveUsernameUpdate(outcome string) { s.outcomes = append(s.outcomes, outcome) }
