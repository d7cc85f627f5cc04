package api

// Request DTOs shared by backend and frontend handlers

// UsernameRequest is the body of PATCH /v1/username.
type UsernameRequest struct {
	Name string `json:"name" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
