package table

import (
	"github.com/collectyourcards/card-services/internal/cardsvc/models"
)

type Action string

const (
	ActionAdd            Action = "add"
	ActionEdit           Action = "edit"
	ActionDelete         Action = "delete"
	ActionFavorite       Action = "favorite"
	ActionRemoveFromList Action = "remove_from_list"
	ActionShare          Action = "share"
)

// ActionCallbacks are the caller-supplied hooks the dispatcher routes
// clicks to. Network calls and navigation belong to the caller.
type ActionCallbacks struct {
	OnAdd            func(models.CardRow)
	OnEdit           func(models.CardRow)
	OnDelete         func(models.CardRow)
	OnFavorite       func(models.CardRow)
	OnRemoveFromList func(models.CardRow)
	OnShare          func(models.CardRow)
}

// Dispatcher decides which row affordances are visible and enabled,
// gated by authentication state and view mode, and forwards clicks.
// It performs no I/O of its own.
type Dispatcher struct {
	Authenticated bool
	Mode          ViewMode
	ListContext   bool

	callbacks ActionCallbacks

	bulkMode  bool
	selection map[int64]bool

	removing map[int64]bool // user-card removals in flight
}

func NewDispatcher(authenticated bool, mode ViewMode, listContext bool, cb ActionCallbacks) *Dispatcher {
	return &Dispatcher{
		Authenticated: authenticated,
		Mode:          mode,
		ListContext:   listContext,
		callbacks:     cb,
		selection:     make(map[int64]bool),
		removing:      make(map[int64]bool),
	}
}

// Visible reports whether an affordance shows for a row.
func (d *Dispatcher) Visible(a Action, row models.CardRow) bool {
	switch a {
	case ActionAdd:
		return d.Authenticated && !d.bulkMode
	case ActionEdit, ActionDelete, ActionFavorite:
		return d.Authenticated && d.Mode == ViewCollection
	case ActionRemoveFromList:
		return d.Authenticated && d.ListContext
	case ActionShare:
		return true
	default:
		return false
	}
}

// Enabled reports whether a visible affordance currently accepts
// clicks. Remove-from-list is disabled while a removal for that row is
// in flight.
func (d *Dispatcher) Enabled(a Action, row models.CardRow) bool {
	if !d.Visible(a, row) {
		return false
	}
	if a == ActionRemoveFromList {
		return !d.removing[row.ID]
	}
	return true
}

// Dispatch forwards a click to the matching callback. Returns false
// when the affordance is hidden, disabled, or unwired.
func (d *Dispatcher) Dispatch(a Action, row models.CardRow) bool {
	if !d.Enabled(a, row) {
		return false
	}
	var cb func(models.CardRow)
	switch a {
	case ActionAdd:
		cb = d.callbacks.OnAdd
	case ActionEdit:
		cb = d.callbacks.OnEdit
	case ActionDelete:
		cb = d.callbacks.OnDelete
	case ActionFavorite:
		cb = d.callbacks.OnFavorite
	case ActionRemoveFromList:
		cb = d.callbacks.OnRemoveFromList
	case ActionShare:
		cb = d.callbacks.OnShare
	}
	if cb == nil {
		return false
	}
	cb(row)
	return true
}

// SetBulkMode toggles bulk selection. Entering or leaving bulk mode
// clears any existing selection immediately; selection state does not
// survive a mode switch.
func (d *Dispatcher) SetBulkMode(on bool) {
	d.bulkMode = on
	d.selection = make(map[int64]bool)
}

func (d *Dispatcher) BulkMode() bool {
	return d.bulkMode
}

// ToggleSelect flips a row's bulk selection. Ignored outside bulk
// mode.
func (d *Dispatcher) ToggleSelect(rowID int64) {
	if !d.bulkMode {
		return
	}
	if d.selection[rowID] {
		delete(d.selection, rowID)
		return
	}
	d.selection[rowID] = true
}

func (d *Dispatcher) Selected(rowID int64) bool {
	return d.selection[rowID]
}

func (d *Dispatcher) SelectionCount() int {
	return len(d.selection)
}

// BeginRemoval marks a row's removal as in flight, disabling its
// remove affordance until EndRemoval.
func (d *Dispatcher) BeginRemoval(rowID int64) {
	d.removing[rowID] = true
}

func (d *Dispatcher) EndRemoval(rowID int64) {
	delete(d.removing, rowID)
}
