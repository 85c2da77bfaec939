package table

import (
	"testing"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []models.CardRow {
	r1 := row(1, "1", "Mike", "Tigers", "Topps Base")
	r1.IsAutograph = true
	r2 := row(2, "2", "Juan", "Yankees", "Topps Base")
	r2.IsRookie = true
	r3 := row(3, "3", "Shohei", "Dodgers", "Topps Chrome")
	r3.IsRelic = true
	r3.PrintRun = intPtr(99)
	r4 := row(4, "4A", "Aaron", "Yankees", "Topps Chrome")
	r4.IsShortPrint = true
	return []models.CardRow{r1, r2, r3, r4}
}

func TestFilterFreeText(t *testing.T) {
	rows := filterFixture()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"1", "2", "3", "4A"}},
		{"player last name", "shohei", []string{"3"}},
		{"team name", "yankees", []string{"2", "4A"}},
		{"series name", "chrome", []string{"3", "4A"}},
		{"card number", "4a", []string{"4A"}},
		{"no match", "wander", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(rows, tt.query, StructuralFilters{}, ViewCatalog)
			assert.Equal(t, tt.want, cardNumbers(got))
		})
	}
}

func TestFilterAttributeKeywords(t *testing.T) {
	rows := filterFixture()

	tests := []struct {
		query string
		want  []string
	}{
		{"auto", []string{"1"}},
		{"autograph", []string{"1"}},
		{"rookie", []string{"2"}},
		{"rc", []string{"2"}},
		{"relic", []string{"3"}},
		{"sp", []string{"4A"}},
		{"short print", []string{"4A"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(rows, tt.query, StructuralFilters{}, ViewCatalog)
			assert.Equal(t, tt.want, cardNumbers(got))
		})
	}
}

func TestFilterTeamIds(t *testing.T) {
	rows := filterFixture()

	got := Filter(rows, "", StructuralFilters{TeamIds: []int64{2, 4}}, ViewCatalog)
	assert.Equal(t, []string{"2", "4A"}, cardNumbers(got))

	// empty set is a no-op
	got = Filter(rows, "", StructuralFilters{TeamIds: nil}, ViewCatalog)
	assert.Len(t, got, 4)
}

func TestFilterStat(t *testing.T) {
	rows := filterFixture()

	tests := []struct {
		stat StatFilter
		want []string
	}{
		{StatRookie, []string{"2"}},
		{StatAutograph, []string{"1"}},
		{StatRelic, []string{"3"}},
		{StatNumbered, []string{"3"}},
		{StatNone, []string{"1", "2", "3", "4A"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stat), func(t *testing.T) {
			got := Filter(rows, "", StructuralFilters{Stat: tt.stat}, ViewCatalog)
			assert.Equal(t, tt.want, cardNumbers(got))
		})
	}
}

func TestFilterComposesWithAND(t *testing.T) {
	rows := filterFixture()

	// yankees AND rookie leaves only card 2
	got := Filter(rows, "yankees", StructuralFilters{Stat: StatRookie}, ViewCatalog)
	assert.Equal(t, []string{"2"}, cardNumbers(got))
}

func TestFilterCollectionFieldsGatedByMode(t *testing.T) {
	rows := []models.CardRow{
		ownedRow(1, "1", "Mike", "Tigers", "Topps Base", models.OwnedDetails{
			LocationName: "Binder A", Notes: "gift from dad", OwnedCount: 1,
		}),
	}

	assert.Empty(t, Filter(rows, "binder", StructuralFilters{}, ViewCatalog))
	assert.Len(t, Filter(rows, "binder", StructuralFilters{}, ViewCollection), 1)
	assert.Len(t, Filter(rows, "gift", StructuralFilters{}, ViewCollection), 1)
}

func TestFilterIdempotent(t *testing.T) {
	rows := filterFixture()
	f := StructuralFilters{TeamIds: []int64{2, 4}}

	once := Filter(rows, "topps", f, ViewCatalog)
	twice := Filter(once, "topps", f, ViewCatalog)
	require.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := filterFixture()
	before := cardNumbers(rows)

	Filter(rows, "yankees", StructuralFilters{Stat: StatRookie}, ViewCatalog)
	assert.Equal(t, before, cardNumbers(rows))
}

func TestFilterMalformedRow(t *testing.T) {
	// no player teams, no series: must not panic, just never match text
	bare := models.CardRow{Card: models.Card{ID: 9, CardNumber: "9"}}
	rows := []models.CardRow{bare}

	assert.Empty(t, Filter(rows, "anything", StructuralFilters{}, ViewCollection))
	assert.Equal(t, []string{"9"}, cardNumbers(Filter(rows, "9", StructuralFilters{}, ViewCatalog)))
}
