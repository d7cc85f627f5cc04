package service

import (
	"context"
	"net/http"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/breadit-dev/breadit/shared/errors"
	"github.com/breadit-dev/breadit/shared/validation"
)

type UserService interface {
	Me(ctx context.Context, id domain.UserId) (domain.User, error)
	UpdateUsername(ctx context.Context, id domain.UserId, name string) error
}

type UserStorage interface {
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	UpdateUsername(ctx context.Context, id domain.UserId, username domain.Username) error
}

type UsernameValidator interface {
	Validate(raw string) (api.UsernameRequest, validation.FieldErrors)
}

type User struct {
	storage   UserStorage
	validator UsernameValidator
	observer  Observer
}

func NewUser(storage UserStorage, validator UsernameValidator, observer Observer) UserService {
	return &User{storage: storage, validator: validator, observer: orNoop(observer)}
}

func (u *User) Me(ctx context.Context, id domain.UserId) (domain.User, error) {
	return u.storage.User(ctx, id)
}

// UpdateUsername validates name with the same rules the settings form uses
// and stores it. Storage reports a taken name as 409.
func (u *User) UpdateUsername(ctx context.Context, id domain.UserId, name string) error {
	req, fieldErrs := u.validator.Validate(name)
	if fieldErrs.HasErrors() {
		u.observer.ObserveUsernameUpdate("invalid")
		return &errors.ErrorWithStatusCode{Message: fieldErrs.Error(), StatusCode: http.StatusBadRequest}
	}

	if err := u.storage.UpdateUsername(ctx, id, req.Name); err != nil {
		switch {
		case errors.IsConflict(err):
			u.observer.ObserveUsernameUpdate("conflict")
		default:
			u.observer.ObserveUsernameUpdate("error")
		}
		return err
	}

	u.observer.ObserveUsernameUpdate("ok")
	return nil
}
