package apiclient

import (
	"fmt"
	"net/http"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/domain"
)

// GetFeed fetches one feed page, forwarding the viewer's cookies so the
// backend can resolve who is looking.
func (c *APIClient) GetFeed(r *http.Request, page int) (*api.FeedResponse, error) {
	path := "/v1/feed"
	if page > 1 {
		path = fmt.Sprintf("/v1/feed?page=%d", page)
	}

	resp, err := c.do(r.Context(), http.MethodGet, path, nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "load feed")
	}

	var feed api.FeedResponse
	if err := decodeJSON(resp, &feed, "feed"); err != nil {
		return nil, err
	}
	if feed.Posts == nil {
		feed.Posts = []domain.Post{}
	}
	return &feed, nil
}
