package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/go-chi/chi"
	"github.com/jackc/pgx/v5"
)

// ListCollection serves the authenticated user's collection view.
func (h *Handler) ListCollection(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	p := parseTableParams(r, table.ViewCollection)

	result, err := h.Collection.BrowseCollection(r.Context(), userId, p)
	if err != nil {
		h.serverError(w, "CollectionService.BrowseCollection", err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: cardListPayload{Cards: result.Cards, Total: result.Total, HasMore: result.HasMore},
	})
}

type addCardRequest struct {
	CardId int64               `json:"card_id"`
	Owned  models.OwnedDetails `json:"owned"`
}

// AddCard puts a card into the user's collection.
func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}

	var req addCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardId == 0 {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	userCardId, err := h.Collection.AddCard(r.Context(), userId, req.CardId, req.Owned)
	if err != nil {
		h.serverError(w, "CollectionService.AddCard", err)
		return
	}

	h.publish(comm.CollectionActivity{
		Type:   comm.ActivityCardAdded,
		UserId: userId,
		CardId: req.CardId,
	})

	h.CreateResponse(w, Response{
		Code: http.StatusCreated,
		Data: map[string]int64{"user_card_id": userCardId},
	})
}

// GetUserCard serves one card from the user's collection.
func (h *Handler) GetUserCard(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	userCardId, err := strconv.ParseInt(chi.URLParam(r, "userCardId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid user card id"})
		return
	}

	row, err := h.Collection.GetUserCard(r.Context(), userId, userCardId)
	if err != nil {
		h.serverError(w, "CollectionService.GetUserCard", err)
		return
	}
	if row == nil {
		h.notFound(w, "user card")
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: row})
}

// UpdateCard edits the owned fields of one user card.
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	userCardId, err := strconv.ParseInt(chi.URLParam(r, "userCardId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid user card id"})
		return
	}

	var od models.OwnedDetails
	if err := json.NewDecoder(r.Body).Decode(&od); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	if err := h.Collection.UpdateCard(r.Context(), userId, userCardId, od); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.notFound(w, "user card")
			return
		}
		h.serverError(w, "CollectionService.UpdateCard", err)
		return
	}

	h.publish(comm.CollectionActivity{
		Type:   comm.ActivityCardUpdated,
		UserId: userId,
		CardId: userCardId,
	})

	h.CreateResponse(w, Response{Code: http.StatusOK, Message: "updated"})
}

// DeleteCard removes one user card from the collection.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	userCardId, err := strconv.ParseInt(chi.URLParam(r, "userCardId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid user card id"})
		return
	}

	if err := h.Collection.DeleteCard(r.Context(), userId, userCardId); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.notFound(w, "user card")
			return
		}
		h.serverError(w, "CollectionService.DeleteCard", err)
		return
	}

	h.publish(comm.CollectionActivity{
		Type:   comm.ActivityCardRemoved,
		UserId: userId,
		CardId: userCardId,
	})

	h.CreateResponse(w, Response{Code: http.StatusOK, Message: "deleted"})
}

// ToggleFavorite flips the favorite flag on one user card.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	userCardId, err := strconv.ParseInt(chi.URLParam(r, "userCardId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid user card id"})
		return
	}

	favorite, err := h.Collection.ToggleFavorite(r.Context(), userId, userCardId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.notFound(w, "user card")
			return
		}
		h.serverError(w, "CollectionService.ToggleFavorite", err)
		return
	}

	h.publish(comm.CollectionActivity{
		Type:   comm.ActivityFavorite,
		UserId: userId,
		CardId: userCardId,
	})

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]bool{"is_favorite": favorite},
	})
}
