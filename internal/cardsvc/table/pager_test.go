package table

import (
	"testing"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/stretchr/testify/assert"
)

func TestPagerTriggersNearBottom(t *testing.T) {
	calls := 0
	p := NewPager(true, func() { calls++ })

	// 2000px of content, viewport 600, scrolled to 1250:
	// remaining = 2000 - (1250+600) = 150 <= threshold
	p.Observe(1250, 600, 2000)
	assert.Equal(t, 1, calls)
}

func TestPagerDoesNotTriggerFarFromBottom(t *testing.T) {
	calls := 0
	p := NewPager(true, func() { calls++ })

	p.Observe(0, 600, 2000)
	assert.Zero(t, calls)
}

func TestPagerReentrancyGuard(t *testing.T) {
	calls := 0
	p := NewPager(true, func() { calls++ })

	p.Observe(1250, 600, 2000)
	p.Observe(1300, 600, 2000) // still loading, discarded
	assert.Equal(t, 1, calls)

	p.LoadComplete(true)
	p.Observe(1300, 600, 2000)
	assert.Equal(t, 2, calls)
}

func TestPagerStopsWhenExhausted(t *testing.T) {
	calls := 0
	p := NewPager(true, func() { calls++ })

	p.Observe(1250, 600, 2000)
	p.LoadComplete(false)

	p.Observe(1900, 600, 2500)
	assert.Equal(t, 1, calls)
	assert.False(t, p.HasMore())
}

func TestMergeAppendsWithoutDisturbingExisting(t *testing.T) {
	existing := []models.CardRow{
		row(1, "1", "A", "Team", "S"),
		row(2, "2", "B", "Team", "S"),
	}
	incoming := []models.CardRow{
		row(3, "3", "C", "Team", "S"),
	}

	merged := Merge(existing, incoming)
	assert.Equal(t, []string{"1", "2", "3"}, cardNumbers(merged))
	assert.Len(t, existing, 2, "input slices untouched")
}
