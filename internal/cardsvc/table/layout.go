package table

// MinColumnWidth is the clamp floor for user-driven resizes, keeping
// columns usable.
const MinColumnWidth = 50

// Layout tracks per-column widths and the active resize drag for one
// table instance. Width state is ephemeral; only column visibility is
// persisted server-side.
type Layout struct {
	widths map[ColumnID]int // 0 means auto

	resizing   bool
	resizeCol  ColumnID
	startX     int
	startWidth int
}

// NewLayout seeds widths from the registry's declared initial widths.
func NewLayout() *Layout {
	widths := make(map[ColumnID]int, len(Registry))
	for _, c := range Registry {
		widths[c.ID] = c.Width
	}
	return &Layout{widths: widths}
}

// Width returns the current width for a column, 0 for auto or unknown
// columns.
func (l *Layout) Width(id ColumnID) int {
	return l.widths[id]
}

// BeginResize starts a drag on one column. Starting a new resize while
// one is active is not a supported input; last writer wins.
func (l *Layout) BeginResize(id ColumnID, pointerX int) {
	w := l.widths[id]
	if w == 0 {
		w = MinColumnWidth
	}
	l.resizing = true
	l.resizeCol = id
	l.startX = pointerX
	l.startWidth = w
}

// UpdateResize applies the drag delta to the active column, clamped at
// MinColumnWidth. No-op when no resize is active.
func (l *Layout) UpdateResize(pointerX int) {
	if !l.resizing {
		return
	}
	w := l.startWidth + (pointerX - l.startX)
	if w < MinColumnWidth {
		w = MinColumnWidth
	}
	l.widths[l.resizeCol] = w
}

// EndResize finishes the active drag.
func (l *Layout) EndResize() {
	l.resizing = false
	l.resizeCol = ""
}

// Resizing reports whether a drag is active.
func (l *Layout) Resizing() bool {
	return l.resizing
}
