package table

import (
	"testing"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherVisibilityGating(t *testing.T) {
	r := row(1, "1", "Mike", "Tigers", "Topps Base")

	tests := []struct {
		name        string
		auth        bool
		mode        ViewMode
		listContext bool
		action      Action
		want        bool
	}{
		{"add needs auth", false, ViewCatalog, false, ActionAdd, false},
		{"add visible when authed", true, ViewCatalog, false, ActionAdd, true},
		{"edit hidden in catalog view", true, ViewCatalog, false, ActionEdit, false},
		{"edit visible in collection view", true, ViewCollection, false, ActionEdit, true},
		{"delete needs collection view", true, ViewList, false, ActionDelete, false},
		{"favorite needs auth", false, ViewCollection, false, ActionFavorite, false},
		{"remove needs list context", true, ViewList, false, ActionRemoveFromList, false},
		{"remove visible in list context", true, ViewList, true, ActionRemoveFromList, true},
		{"share always visible", false, ViewCatalog, false, ActionShare, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(tt.auth, tt.mode, tt.listContext, ActionCallbacks{})
			assert.Equal(t, tt.want, d.Visible(tt.action, r))
		})
	}
}

func TestDispatcherBulkModeHidesAdd(t *testing.T) {
	r := row(1, "1", "Mike", "Tigers", "Topps Base")
	d := NewDispatcher(true, ViewCatalog, false, ActionCallbacks{})

	assert.True(t, d.Visible(ActionAdd, r))
	d.SetBulkMode(true)
	assert.False(t, d.Visible(ActionAdd, r))
}

func TestDispatcherBulkModeTogglesClearSelection(t *testing.T) {
	d := NewDispatcher(true, ViewCollection, false, ActionCallbacks{})

	d.SetBulkMode(true)
	d.ToggleSelect(1)
	d.ToggleSelect(2)
	assert.Equal(t, 2, d.SelectionCount())

	d.SetBulkMode(false)
	assert.Zero(t, d.SelectionCount(), "selection does not survive a mode switch")

	d.SetBulkMode(true)
	assert.Zero(t, d.SelectionCount())
}

func TestDispatcherSelectionOnlyInBulkMode(t *testing.T) {
	d := NewDispatcher(true, ViewCollection, false, ActionCallbacks{})

	d.ToggleSelect(1)
	assert.Zero(t, d.SelectionCount())

	d.SetBulkMode(true)
	d.ToggleSelect(1)
	assert.True(t, d.Selected(1))
	d.ToggleSelect(1)
	assert.False(t, d.Selected(1))
}

func TestDispatcherRemovalInFlightDisablesRow(t *testing.T) {
	r := row(7, "7", "Mike", "Tigers", "Topps Base")
	called := 0
	d := NewDispatcher(true, ViewList, true, ActionCallbacks{
		OnRemoveFromList: func(models.CardRow) { called++ },
	})

	assert.True(t, d.Dispatch(ActionRemoveFromList, r))
	d.BeginRemoval(r.ID)
	assert.False(t, d.Dispatch(ActionRemoveFromList, r), "in-flight removal blocks the row")
	d.EndRemoval(r.ID)
	assert.True(t, d.Dispatch(ActionRemoveFromList, r))

	assert.Equal(t, 2, called)
}

func TestDispatcherDispatchForwardsRow(t *testing.T) {
	r := ownedRow(3, "3", "Mike", "Tigers", "Topps Base", models.OwnedDetails{OwnedCount: 1})
	var got models.CardRow
	d := NewDispatcher(true, ViewCollection, false, ActionCallbacks{
		OnFavorite: func(row models.CardRow) { got = row },
	})

	assert.True(t, d.Dispatch(ActionFavorite, r))
	assert.Equal(t, int64(3), got.ID)
}

func TestDispatcherUnwiredCallback(t *testing.T) {
	r := row(1, "1", "Mike", "Tigers", "Topps Base")
	d := NewDispatcher(true, ViewCollection, false, ActionCallbacks{})

	assert.False(t, d.Dispatch(ActionDelete, r))
}
