package service

import (
	"context"
	"fmt"
	"math"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/domain"
)

// to mock service in tests
type FeedService interface {
	Recent(ctx context.Context, page int) (*api.FeedResponse, error)
}

type FeedStorage interface {
	RecentPosts(ctx context.Context, limit, offset int) ([]domain.Post, error)
}

type Feed struct {
	storage  FeedStorage
	cfg      *config.Config
	observer Observer
}

func NewFeed(storage FeedStorage, cfg *config.Config, observer Observer) FeedService {
	return &Feed{storage: storage, cfg: cfg, observer: orNoop(observer)}
}

// Recent returns the given page of the feed, newest first. The page size is
// taken from configuration only. Storage errors are returned as is.
func (f *Feed) Recent(ctx context.Context, page int) (*api.FeedResponse, error) {
	page = max(1, page)
	size := f.cfg.PageSize()

	resp := &api.FeedResponse{Posts: []domain.Post{}, Page: page, PageSize: size}
	// offset would overflow; nothing can live that deep anyway
	if size == 0 || page-1 > math.MaxInt32/size {
		return resp, nil
	}

	posts, err := f.storage.RecentPosts(ctx, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed page %d: %w", page, err)
	}
	if len(posts) > size {
		posts = posts[:size]
	}

	f.observer.ObserveFeed(len(posts))
	resp.Posts = posts
	return resp, nil
}
