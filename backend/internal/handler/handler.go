package handler

import (
	"context"
	"net/http"

	"github.com/breadit-dev/breadit/backend/internal/service"
	"github.com/breadit-dev/breadit/shared/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	feed   service.FeedService
	user   service.UserService
	health HealthChecker
}

func New(feed service.FeedService, user service.UserService, health HealthChecker) *Handler {
	return &Handler{feed: feed, user: user, health: health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	utils.WriteJSON(w, http.StatusOK, v)
}
