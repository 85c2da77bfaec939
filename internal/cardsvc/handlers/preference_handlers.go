package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	"github.com/go-chi/chi"
)

type preferencePayload struct {
	TableName      string           `json:"table_name"`
	VisibleColumns []table.ColumnID `json:"visible_columns"`
}

type putPreferenceRequest struct {
	VisibleColumns []string `json:"visible_columns"`
}

// modeForTable maps a preference table name to the view mode whose
// column registry governs it.
func modeForTable(tableName string) table.ViewMode {
	switch {
	case strings.HasPrefix(tableName, "collection"):
		return table.ViewCollection
	case strings.HasPrefix(tableName, "list"):
		return table.ViewList
	default:
		return table.ViewCatalog
	}
}

// GetPreferences returns the user's saved column set for a table,
// falling back to defaults when nothing is saved yet.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	tableName := chi.URLParam(r, "tableName")

	cols := h.Preferences.VisibleColumns(r.Context(), userId, tableName, modeForTable(tableName))

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: preferencePayload{TableName: tableName, VisibleColumns: cols},
	})
}

// PutPreferences saves the user's column set for a table. The stored
// set is sanitized against the column registry, so the response echoes
// what was actually persisted.
func (h *Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}
	tableName := chi.URLParam(r, "tableName")

	var req putPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	cols, err := h.Preferences.SaveVisibleColumns(r.Context(), userId, tableName, modeForTable(tableName), req.VisibleColumns)
	if err != nil {
		h.serverError(w, "PreferenceService.SaveVisibleColumns", err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: preferencePayload{TableName: tableName, VisibleColumns: cols},
	})
}
