package table

import (
	"github.com/collectyourcards/card-services/internal/cardsvc/models"
)

// Params is the capability-flag configuration of one table view
// request: which mode the table runs in and how the caller wants the
// records filtered, ordered and paged.
type Params struct {
	Mode    ViewMode
	Query   string
	Filters StructuralFilters

	SortField ColumnID
	Dir       Direction

	// ServerPaginated marks infinite-scroll views whose order the
	// server owns; client-side sorting is skipped for them.
	ServerPaginated bool

	Page     int // 1-based
	PageSize int // 0 means everything
}

// Result is one derived render state of the table.
type Result struct {
	Cards   []models.CardRow
	Total   int
	HasMore bool
}

// BuildView derives the rendered view from raw records: filter, then
// sort, then page. Pure; records flow one direction.
func BuildView(rows []models.CardRow, p Params) Result {
	filtered := Filter(rows, p.Query, p.Filters, p.Mode)

	field := p.SortField
	if field == "" {
		field = ColSeries
	}
	sorted := Sort(filtered, field, p.Dir, p.ServerPaginated)

	total := len(sorted)
	if p.PageSize <= 0 {
		return Result{Cards: sorted, Total: total}
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * p.PageSize
	if start >= total {
		return Result{Cards: []models.CardRow{}, Total: total}
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return Result{
		Cards:   sorted[start:end],
		Total:   total,
		HasMore: end < total,
	}
}
