package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/domain"
	mw "github.com/breadit-dev/breadit/shared/middleware"
)

func createRequest(t *testing.T, method, url string, body []byte, cookies ...*http.Cookie) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func withUser(req *http.Request, id domain.UserId) *http.Request {
	return req.WithContext(mw.WithUser(req.Context(), &domain.User{Id: id}))
}

// --- Mock for FeedService ---

type MockFeedService struct {
	RecentFunc func(ctx context.Context, page int) (*api.FeedResponse, error)
}

func (m *MockFeedService) Recent(ctx context.Context, page int) (*api.FeedResponse, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, page)
	}
	return &api.FeedResponse{Posts: []domain.Post{}, Page: page}, nil
}

// --- Mock for UserService ---

type MockUserService struct {
	MeFunc             func(ctx context.Context, id domain.UserId) (domain.User, error)
	UpdateUsernameFunc func(ctx context.Context, id domain.UserId, name string) error
}

func (m *MockUserService) Me(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockUserService) UpdateUsername(ctx context.Context, id domain.UserId, name string) error {
	if m.UpdateUsernameFunc != nil {
		return m.UpdateUsernameFunc(ctx, id, name)
	}
	return nil
}

// --- Mock for HealthChecker ---

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
