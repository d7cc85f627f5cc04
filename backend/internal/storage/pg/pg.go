package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/logger"
	sharedpg "github.com/breadit-dev/breadit/shared/storage/pg"
)

type Querier = sharedpg.Querier

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 5 * time.Second
)

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Host, "dbname", cfg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("connected to db")
	return &Storage{db: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}

func (s *Storage) withSnapshot(ctx context.Context, fn func(*sql.Tx) error) error {
	return sharedpg.WithTxOptions(ctx, s.db, sharedpg.ReadSnapshot, fn)
}
