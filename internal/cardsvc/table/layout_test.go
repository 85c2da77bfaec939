package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutSeedsRegistryWidths(t *testing.T) {
	l := NewLayout()
	assert.Equal(t, 80, l.Width(ColCardNumber))
	assert.Equal(t, 200, l.Width(ColSeries))
	assert.Equal(t, 0, l.Width(ColumnID("bogus")))
}

func TestLayoutResizeDrag(t *testing.T) {
	l := NewLayout()

	l.BeginResize(ColSeries, 400)
	assert.True(t, l.Resizing())

	l.UpdateResize(440)
	assert.Equal(t, 240, l.Width(ColSeries))

	l.UpdateResize(360)
	assert.Equal(t, 160, l.Width(ColSeries))

	l.EndResize()
	assert.False(t, l.Resizing())
	assert.Equal(t, 160, l.Width(ColSeries))
}

func TestLayoutResizeClampsAtMinimum(t *testing.T) {
	l := NewLayout()

	l.BeginResize(ColCardNumber, 100)
	l.UpdateResize(-500)
	assert.Equal(t, MinColumnWidth, l.Width(ColCardNumber))
}

func TestLayoutUpdateWithoutActiveResizeIsNoOp(t *testing.T) {
	l := NewLayout()
	before := l.Width(ColTeam)

	l.UpdateResize(900)
	assert.Equal(t, before, l.Width(ColTeam))
}

func TestLayoutLastResizeWins(t *testing.T) {
	l := NewLayout()

	l.BeginResize(ColTeam, 100)
	l.BeginResize(ColColor, 200) // second drag replaces the first
	l.UpdateResize(250)

	assert.Equal(t, 140, l.Width(ColTeam), "first drag abandoned")
	assert.Equal(t, 150, l.Width(ColColor))
}
