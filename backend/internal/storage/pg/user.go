package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/breadit-dev/breadit/shared/domain"
	internal_errors "github.com/breadit-dev/breadit/shared/errors"
	sharedpg "github.com/breadit-dev/breadit/shared/storage/pg"
)

// usernameConstraint is the unique index on lower(username).
const usernameConstraint = "users_username_key"

// User fetches a user by id.
func (s *Storage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var user domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		user, err = s.user(tx, id)
		return err
	})
	return user, err
}

// UpdateUsername sets the username of id. It returns a 409 error when the
// name (case-insensitively) belongs to another user and 404 when id is unknown.
func (s *Storage) UpdateUsername(ctx context.Context, id domain.UserId, username domain.Username) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateUsername(tx, id, username)
	})
}

func (s *Storage) user(q Querier, id domain.UserId) (domain.User, error) {
	var (
		user                     domain.User
		name, email, image, nick sql.NullString
	)
	err := q.QueryRow(`
		SELECT id, name, email, username, image, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&user.Id, &name, &email, &nick, &image, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}

	user.Name = name.String
	user.Email = email.String
	user.Image = image.String
	if nick.Valid {
		user.Username = &nick.String
	}
	return user, nil
}

func (s *Storage) updateUsername(q Querier, id domain.UserId, username domain.Username) error {
	result, err := q.Exec(`UPDATE users SET username = $2 WHERE id = $1`, id, username)
	if err != nil {
		if sharedpg.IsUniqueViolation(err, usernameConstraint) {
			return &internal_errors.ErrorWithStatusCode{Message: "Username already taken", StatusCode: http.StatusConflict}
		}
		return fmt.Errorf("failed to update username for user %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
