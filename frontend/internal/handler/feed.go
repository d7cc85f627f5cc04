package handler

import (
	"net/http"

	frontend_domain "github.com/breadit-dev/breadit/frontend/internal/domain"
	"github.com/breadit-dev/breadit/shared/errors"
	"github.com/breadit-dev/breadit/shared/logger"
	mw "github.com/breadit-dev/breadit/shared/middleware"
)

// FeedGetHandler renders the newest posts, one page at a time.
func (h *Handler) FeedGetHandler(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	feed, err := h.APIClient.GetFeed(r, page)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to load feed", "page", page, "error", err)
		status := http.StatusBadGateway
		if errors.StatusCode(err) < http.StatusInternalServerError {
			status = errors.StatusCode(err)
		}
		h.renderError(w, r, status, "Could not load the feed", "Something went wrong while loading posts. Please try again later.")
		return
	}

	viewer := mw.GetUserFromContext(r)
	data := frontend_domain.FeedPageData{
		Posts:       make([]*frontend_domain.Post, len(feed.Posts)),
		CurrentPage: page,
		HasMore:     feed.HasMore(),
	}
	for i, post := range feed.Posts {
		data.Posts[i] = h.renderPost(post, viewer)
	}

	h.renderTemplate(w, r, "feed.html", data)
}
