package api

import "github.com/breadit-dev/breadit/shared/domain"

// FeedResponse is one page of the feed, newest first.
// Posts are FULLY enriched (Author, Subreddit, Votes, Comments)
type FeedResponse struct {
	Posts    []domain.Post `json:"posts"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// HasMore reports whether a following page may exist.
func (f *FeedResponse) HasMore() bool {
	return f.PageSize > 0 && len(f.Posts) == f.PageSize
}
