package table

// ViewMode selects which card fields a table instance shows and
// searches. List view behaves like collection view plus the
// remove-from-list affordance.
type ViewMode int

const (
	ViewCatalog ViewMode = iota
	ViewCollection
	ViewList
)

// ShowsOwned reports whether owner-specific fields are in play.
func (m ViewMode) ShowsOwned() bool {
	return m == ViewCollection || m == ViewList
}

type ColumnID string

const (
	ColCardNumber     ColumnID = "card_number"
	ColPlayer         ColumnID = "player"
	ColTeam           ColumnID = "team"
	ColSeries         ColumnID = "series"
	ColColor          ColumnID = "color"
	ColPrintRun       ColumnID = "print_run"
	ColAttributes     ColumnID = "attributes"
	ColSerialNumber   ColumnID = "serial_number"
	ColPurchasePrice  ColumnID = "purchase_price"
	ColEstimatedValue ColumnID = "estimated_value"
	ColCurrentValue   ColumnID = "current_value"
	ColLocation       ColumnID = "location"
	ColGrade          ColumnID = "grade"
	ColNotes          ColumnID = "notes"
	ColOwned          ColumnID = "owned"
)

// Column is one declarative registry entry. Pure data, no behavior.
type Column struct {
	ID             ColumnID
	Label          string
	DefaultVisible bool
	AlwaysVisible  bool
	Sortable       bool
	Width          int // initial width in px, 0 means auto
	HideOnMobile   bool
	CollectionOnly bool
}

// Registry declares every column a card table can render, in render
// order. Visible sets are always a subset of these ids.
var Registry = []Column{
	{ID: ColCardNumber, Label: "Card #", DefaultVisible: true, AlwaysVisible: true, Sortable: true, Width: 80},
	{ID: ColPlayer, Label: "Player", DefaultVisible: true, AlwaysVisible: true, Sortable: true, Width: 180},
	{ID: ColTeam, Label: "Team", DefaultVisible: true, Sortable: true, Width: 140, HideOnMobile: true},
	{ID: ColSeries, Label: "Series", DefaultVisible: true, Sortable: true, Width: 200},
	{ID: ColColor, Label: "Color", DefaultVisible: false, Sortable: true, Width: 100, HideOnMobile: true},
	{ID: ColPrintRun, Label: "Print Run", DefaultVisible: true, Sortable: true, Width: 90},
	{ID: ColAttributes, Label: "Attributes", DefaultVisible: true, Sortable: false, Width: 110, HideOnMobile: true},
	{ID: ColSerialNumber, Label: "Serial #", DefaultVisible: true, Sortable: true, Width: 80, CollectionOnly: true},
	{ID: ColPurchasePrice, Label: "Paid", DefaultVisible: false, Sortable: true, Width: 90, HideOnMobile: true, CollectionOnly: true},
	{ID: ColEstimatedValue, Label: "Est. Value", DefaultVisible: false, Sortable: true, Width: 90, HideOnMobile: true, CollectionOnly: true},
	{ID: ColCurrentValue, Label: "Value", DefaultVisible: true, Sortable: true, Width: 90, CollectionOnly: true},
	{ID: ColLocation, Label: "Location", DefaultVisible: false, Sortable: true, Width: 120, HideOnMobile: true, CollectionOnly: true},
	{ID: ColGrade, Label: "Grade", DefaultVisible: false, Sortable: true, Width: 90, HideOnMobile: true, CollectionOnly: true},
	{ID: ColNotes, Label: "Notes", DefaultVisible: false, Sortable: false, Width: 200, HideOnMobile: true, CollectionOnly: true},
	{ID: ColOwned, Label: "Owned", DefaultVisible: true, Sortable: true, Width: 70, CollectionOnly: true},
}

// Lookup finds a registry entry by id.
func Lookup(id ColumnID) (Column, bool) {
	for _, c := range Registry {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// DefaultVisible returns the default visible set for a view mode, in
// registry order. Catalog view never shows collection-only columns.
func DefaultVisible(mode ViewMode) []ColumnID {
	ids := make([]ColumnID, 0, len(Registry))
	for _, c := range Registry {
		if c.CollectionOnly && !mode.ShowsOwned() {
			continue
		}
		if c.DefaultVisible {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ToggleColumn flips the visibility of one column and returns the new
// set. Unknown ids and always-visible columns leave the set unchanged.
func ToggleColumn(visible []ColumnID, id ColumnID) []ColumnID {
	col, ok := Lookup(id)
	if !ok || col.AlwaysVisible {
		return visible
	}
	out := make([]ColumnID, 0, len(visible)+1)
	removed := false
	for _, v := range visible {
		if v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if removed {
		return out
	}
	return append(out, id)
}

// SanitizeVisible filters a stored visible-column set down to ids the
// registry knows for the given view mode, re-adding always-visible
// columns, and keeps registry render order. An empty result falls
// back to the defaults.
func SanitizeVisible(stored []string, mode ViewMode) []ColumnID {
	want := make(map[ColumnID]bool, len(stored))
	for _, s := range stored {
		want[ColumnID(s)] = true
	}
	ids := make([]ColumnID, 0, len(Registry))
	for _, c := range Registry {
		if c.CollectionOnly && !mode.ShowsOwned() {
			continue
		}
		if c.AlwaysVisible || want[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	if len(stored) == 0 {
		return DefaultVisible(mode)
	}
	return ids
}
