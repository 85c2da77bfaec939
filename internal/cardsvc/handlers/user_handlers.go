package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
)

type provisionRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// ProvisionUser creates the user record on first sign-in and returns
// it on subsequent calls.
func (h *Handler) ProvisionUser(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}

	var req provisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	user, err := h.Users.GetOrCreateUser(r.Context(), models.User{
		UserId: userId,
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.serverError(w, "UserService.GetOrCreateUser", err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: user})
}
