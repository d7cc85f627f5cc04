package setup

import (
	"context"

	"github.com/breadit-dev/breadit/backend/internal/handler"
	"github.com/breadit-dev/breadit/backend/internal/service"
	"github.com/breadit-dev/breadit/backend/internal/storage/pg"
	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/jwt"
	"github.com/breadit-dev/breadit/shared/logger"
	mw "github.com/breadit-dev/breadit/shared/middleware"
	"github.com/breadit-dev/breadit/shared/middleware/metrics"
	"github.com/breadit-dev/breadit/shared/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Metrics        *metrics.Metrics
}

// SetupDependencies initializes all dependencies required for the API.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg.Pg())
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("api", reg)

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	usernames := validation.NewUsernameValidator(cfg.Public.UsernameMinLen, cfg.Public.UsernameMaxLen)

	feed := service.NewFeed(storage, cfg, m)
	user := service.NewUser(storage, usernames, m)

	logger.Log.Info("api dependencies ready", "feed_page_size", cfg.PageSize())

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(feed, user, storage),
		AuthMiddleware: mw.NewAuth(jwtService),
		Metrics:        m,
	}, nil
}
