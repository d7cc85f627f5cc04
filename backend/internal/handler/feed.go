package handler

import (
	"net/http"

	"github.com/breadit-dev/breadit/shared/logger"
	"github.com/breadit-dev/breadit/shared/utils"
)

// GetFeed serves GET /v1/feed?page=N. The page size is not client controlled.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	feed, err := h.feed.Recent(r.Context(), page)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to load feed", "page", page, "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, feed)
}
