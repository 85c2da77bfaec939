package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/collectyourcards/card-services/internal/cardsvc/table"
)

const defaultPageSize = 100

// parseTableParams builds the table engine parameters from the
// request's query string. Unknown sort fields fall back to the
// engine's default; page sizes are clamped.
func parseTableParams(r *http.Request, mode table.ViewMode) table.Params {
	q := r.URL.Query()

	p := table.Params{
		Mode:  mode,
		Query: q.Get("query"),
		Filters: table.StructuralFilters{
			TeamIds: parseTeamIds(q.Get("teams")),
			Stat:    parseStat(q.Get("stat")),
		},
		SortField: parseSortField(q.Get("sort")),
	}

	if q.Get("dir") == "desc" {
		p.Dir = table.Descending
	}

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	if pageSize <= 0 || pageSize > table.FullLoadCap {
		pageSize = defaultPageSize
	}
	p.Page = page
	p.PageSize = pageSize

	return p
}

func parseTeamIds(raw string) []int64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func parseStat(raw string) table.StatFilter {
	switch table.StatFilter(raw) {
	case table.StatRookie, table.StatAutograph, table.StatRelic, table.StatNumbered:
		return table.StatFilter(raw)
	default:
		return table.StatNone
	}
}

// parseSortField accepts registry columns flagged sortable plus the
// boolean attribute sort keys.
func parseSortField(raw string) table.ColumnID {
	id := table.ColumnID(raw)
	switch id {
	case table.SortRookie, table.SortAutograph, table.SortRelic, table.SortShortPrint:
		return id
	}
	if col, ok := table.Lookup(id); ok && col.Sortable {
		return id
	}
	return "" // engine default
}
