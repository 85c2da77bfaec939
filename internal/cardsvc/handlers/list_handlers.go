package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/collectyourcards/card-services/internal/cardsvc/service"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/go-chi/chi"
	"github.com/jackc/pgx/v5"
)

type listPayload struct {
	List    interface{} `json:"list"`
	Cards   interface{} `json:"cards"`
	Total   int         `json:"total"`
	HasMore bool        `json:"has_more"`
}

// ListCardsInList serves the list-detail table view.
func (h *Handler) ListCardsInList(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	slug := chi.URLParam(r, "slug")
	p := parseTableParams(r, table.ViewList)

	list, result, err := h.Lists.BrowseList(r.Context(), userId, slug, p)
	if err != nil {
		h.serverError(w, "ListService.BrowseList", err)
		return
	}
	if list == nil {
		h.notFound(w, "list")
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: listPayload{List: list, Cards: result.Cards, Total: result.Total, HasMore: result.HasMore},
	})
}

// RemoveCardFromList takes one card off the list.
func (h *Handler) RemoveCardFromList(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	slug := chi.URLParam(r, "slug")
	cardId, err := strconv.ParseInt(chi.URLParam(r, "cardId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid card id"})
		return
	}

	if err := h.Lists.RemoveCard(r.Context(), userId, slug, cardId); err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
			h.notFound(w, "list card")
			return
		}
		h.serverError(w, "ListService.RemoveCard", err)
		return
	}

	h.publish(comm.CollectionActivity{
		Type:     comm.ActivityListRemoval,
		UserId:   userId,
		CardId:   cardId,
		ListSlug: slug,
	})

	h.CreateResponse(w, Response{Code: http.StatusOK, Message: "removed"})
}
