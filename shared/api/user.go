package api

import "github.com/breadit-dev/breadit/shared/domain"

// Response DTOs

type UserResponse struct {
	User domain.User `json:"user"`
}
