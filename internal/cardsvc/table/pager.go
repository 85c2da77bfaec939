package table

import (
	"github.com/collectyourcards/card-services/internal/cardsvc/models"
)

const (
	// ScrollThreshold is the remaining distance to the bottom, in px,
	// at which the next page load fires.
	ScrollThreshold = 200

	// FullLoadCap bounds a single full-reload fetch.
	FullLoadCap = 10000
)

// Pager decides when to ask the hosting page for more records during
// infinite scroll. It never performs I/O itself; loadMore is a
// caller-supplied callback. A table instance is either infinite-scroll
// or full-reload, never both.
type Pager struct {
	loadMore func()

	hasMore     bool
	loadingMore bool
}

func NewPager(hasMore bool, loadMore func()) *Pager {
	return &Pager{loadMore: loadMore, hasMore: hasMore}
}

// Observe feeds a scroll position into the controller. Fires loadMore
// at most once per approach to the bottom: a second trigger while a
// load is in flight is discarded, not queued.
func (p *Pager) Observe(scrollTop, viewportHeight, contentHeight int) {
	if !p.hasMore || p.loadingMore || p.loadMore == nil {
		return
	}
	remaining := contentHeight - (scrollTop + viewportHeight)
	if remaining > ScrollThreshold {
		return
	}
	p.loadingMore = true
	p.loadMore()
}

// LoadComplete marks the in-flight load finished and records whether
// the source has more records.
func (p *Pager) LoadComplete(hasMore bool) {
	p.loadingMore = false
	p.hasMore = hasMore
}

// Loading reports whether a load is in flight.
func (p *Pager) Loading() bool {
	return p.loadingMore
}

// HasMore reports whether the source claims more records.
func (p *Pager) HasMore() bool {
	return p.hasMore
}

// Merge appends newly loaded rows to the existing view without
// disturbing the rows already rendered, so the scroll offset is
// preserved. Returns a new slice.
func Merge(existing, incoming []models.CardRow) []models.CardRow {
	out := make([]models.CardRow, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	out = append(out, incoming...)
	return out
}
