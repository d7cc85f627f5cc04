package domain

import (
	"time"
)

type User struct {
	Id        UserId    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Username  *Username `json:"username,omitempty"` // nil until the user picks one
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
