package table

import (
	"strconv"
	"testing"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewFixture() []models.CardRow {
	rows := make([]models.CardRow, 0, 25)
	for i := 1; i <= 25; i++ {
		rows = append(rows, row(int64(i), strconv.Itoa(i), "Player", "Team", "Series"))
	}
	return rows
}

func TestBuildViewPagination(t *testing.T) {
	rows := viewFixture()

	first := BuildView(rows, Params{Mode: ViewCatalog, SortField: ColCardNumber, PageSize: 10, Page: 1})
	require.Len(t, first.Cards, 10)
	assert.Equal(t, 25, first.Total)
	assert.True(t, first.HasMore)

	last := BuildView(rows, Params{Mode: ViewCatalog, SortField: ColCardNumber, PageSize: 10, Page: 3})
	assert.Len(t, last.Cards, 5)
	assert.False(t, last.HasMore)

	past := BuildView(rows, Params{Mode: ViewCatalog, SortField: ColCardNumber, PageSize: 10, Page: 9})
	assert.Empty(t, past.Cards)
	assert.Equal(t, 25, past.Total)
}

func TestBuildViewUnpagedReturnsEverything(t *testing.T) {
	rows := viewFixture()

	got := BuildView(rows, Params{Mode: ViewCatalog})
	assert.Len(t, got.Cards, 25)
	assert.False(t, got.HasMore)
}

func TestBuildViewFiltersBeforePaging(t *testing.T) {
	r1 := row(1, "1", "Mike", "Tigers", "Series")
	r1.IsAutograph = true
	r2 := row(2, "2", "Juan", "Yankees", "Series")
	rows := []models.CardRow{r1, r2}

	got := BuildView(rows, Params{Mode: ViewCatalog, Query: "auto", PageSize: 10, Page: 1})
	require.Len(t, got.Cards, 1)
	assert.Equal(t, 1, got.Total)
}

func TestBuildViewDefaultsSortToSeries(t *testing.T) {
	r1 := row(1, "1", "A", "Team", "Zeta")
	r2 := row(2, "2", "B", "Team", "Alpha")

	got := BuildView([]models.CardRow{r1, r2}, Params{Mode: ViewCatalog})
	assert.Equal(t, "Alpha", got.Cards[0].Series.Name)
}

func TestBuildViewServerPaginatedSkipsSort(t *testing.T) {
	r1 := row(1, "9", "A", "Team", "S")
	r2 := row(2, "1", "B", "Team", "S")

	got := BuildView([]models.CardRow{r1, r2}, Params{
		Mode: ViewCatalog, SortField: ColCardNumber, ServerPaginated: true,
	})
	assert.Equal(t, []string{"9", "1"}, cardNumbers(got.Cards))
}
