package handlers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/collectyourcards/card-services/internal/cardsvc/table"
)

var filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// exportFilename builds "<base>-2026-08-31.csv" from a caller-supplied
// base, stripped down to filesystem-safe characters.
func exportFilename(raw, fallback string) string {
	base := filenameSafe.ReplaceAllString(raw, "")
	if base == "" {
		base = fallback
	}
	return base + "-" + time.Now().Format("2006-01-02") + ".csv"
}

func (h *Handler) writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportCatalog streams the filtered catalog view as CSV. Pagination
// is ignored so the export covers every matching row.
func (h *Handler) ExportCatalog(w http.ResponseWriter, r *http.Request) {
	p := parseTableParams(r, table.ViewCatalog)
	p.PageSize = 0 // full result set

	result, err := h.Cards.BrowseCards(r.Context(), p)
	if err != nil {
		h.serverError(w, "CardService.BrowseCards", err)
		return
	}

	visible := table.DefaultVisible(table.ViewCatalog)
	if userId, ok := userIdFromRequest(r); ok {
		visible = h.Preferences.VisibleColumns(r.Context(), userId, "catalog", table.ViewCatalog)
	}

	data, err := table.ExportCSV(result.Cards, visible)
	if err != nil {
		h.serverError(w, "table.ExportCSV", err)
		return
	}

	h.writeCSV(w, exportFilename(r.URL.Query().Get("filename"), "cards"), data)
}

// ExportCollection streams the authenticated user's filtered
// collection view as CSV.
func (h *Handler) ExportCollection(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromRequest(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}

	p := parseTableParams(r, table.ViewCollection)
	p.PageSize = 0

	result, err := h.Collection.BrowseCollection(r.Context(), userId, p)
	if err != nil {
		h.serverError(w, "CollectionService.BrowseCollection", err)
		return
	}

	visible := h.Preferences.VisibleColumns(r.Context(), userId, "collection", table.ViewCollection)

	data, err := table.ExportCSV(result.Cards, visible)
	if err != nil {
		h.serverError(w, "table.ExportCSV", err)
		return
	}

	h.writeCSV(w, exportFilename(r.URL.Query().Get("filename"), "collection"), data)
}
