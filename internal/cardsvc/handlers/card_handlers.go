package handlers

import (
	"net/http"
	"strconv"

	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	"github.com/go-chi/chi"
)

type cardListPayload struct {
	Cards   interface{} `json:"cards"`
	Total   int         `json:"total"`
	HasMore bool        `json:"has_more"`
}

// ListCards serves the catalog table view.
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	p := parseTableParams(r, table.ViewCatalog)

	result, err := h.Cards.BrowseCards(r.Context(), p)
	if err != nil {
		h.serverError(w, "CardService.BrowseCards", err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: cardListPayload{Cards: result.Cards, Total: result.Total, HasMore: result.HasMore},
	})
}

// GetCard serves one catalog card.
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "cardId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid card id"})
		return
	}

	card, err := h.Cards.GetCard(r.Context(), id)
	if err != nil {
		h.serverError(w, "CardService.GetCard", err)
		return
	}
	if card == nil {
		h.notFound(w, "card")
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: card})
}

// RecentActivity serves the expiring activity feed.
func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.Activity.Recent(r.Context(), limit)
	if err != nil {
		h.serverError(w, "ActivityService.Recent", err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: events})
}
