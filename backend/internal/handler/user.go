package handler

import (
	"net/http"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/errors"
	"github.com/breadit-dev/breadit/shared/logger"
	mw "github.com/breadit-dev/breadit/shared/middleware"
	"github.com/breadit-dev/breadit/shared/utils"
)

// Me serves GET /v1/users/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	me, err := h.user.Me(r.Context(), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.UserResponse{User: me})
}

// UpdateUsername serves PATCH /v1/username with body {"name": "..."}.
func (h *Handler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	var body api.UsernameRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	log := logger.FromContext(r.Context()).With("user_id", user.Id)
	if err := h.user.UpdateUsername(r.Context(), user.Id, body.Name); err != nil {
		switch errors.StatusCode(err) {
		case http.StatusConflict, http.StatusBadRequest:
			log.Info("username rejected", "name", body.Name, "error", err)
		default:
			log.Error("failed to update username", "error", err)
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	log.Info("username updated", "name", body.Name)
	writeJSON(w, api.MessageResponse{Message: "OK"})
}
