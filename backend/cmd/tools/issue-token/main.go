// Command issue-token mints an access token for an existing user so the API
// and the settings page can be exercised without the identity provider.
//
//	go run ./backend/cmd/tools/issue-token -config_folder config -user <uuid>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/breadit-dev/breadit/shared/jwt"
	"github.com/breadit-dev/breadit/shared/logger"
	"github.com/breadit-dev/breadit/shared/storage/pg"
	"github.com/google/uuid"
)

func main() {
	var (
		configFolder string
		userArg      string
		skipCheck    bool
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&userArg, "user", "", "user id (uuid)")
	flag.BoolVar(&skipCheck, "skip_check", false, "do not verify the user exists")
	flag.Parse()

	id, err := uuid.Parse(userArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -user %q: %v\n", userArg, err)
		os.Exit(2)
	}

	cfg := config.MustLoad(configFolder)

	if !skipCheck {
		if err := checkUser(cfg, id); err != nil {
			logger.Log.Error("user check failed", "user_id", id, "error", err)
			os.Exit(1)
		}
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.User{Id: id})
	if err != nil {
		logger.Log.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func checkUser(cfg *config.Config, id domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := pg.Connect(ctx, cfg.Pg(), pg.LightweightConnectionConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	if err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("no user with id %s", id)
	}
	return nil
}
