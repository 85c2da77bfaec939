package table

import (
	"testing"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortCardNumbersNumeric(t *testing.T) {
	rows := []models.CardRow{
		row(1, "2", "A", "Team", "S"),
		row(2, "10", "B", "Team", "S"),
		row(3, "1", "C", "Team", "S"),
	}

	got := Sort(rows, ColCardNumber, Ascending, false)
	assert.Equal(t, []string{"1", "2", "10"}, cardNumbers(got))

	got = Sort(rows, ColCardNumber, Descending, false)
	assert.Equal(t, []string{"10", "2", "1"}, cardNumbers(got))
}

func TestSortCardNumbersMixedAlphanumeric(t *testing.T) {
	rows := []models.CardRow{
		row(1, "1A", "A", "Team", "S"),
		row(2, "2", "B", "Team", "S"),
		row(3, "1", "C", "Team", "S"),
	}

	got := Sort(rows, ColCardNumber, Ascending, false)
	assert.Equal(t, []string{"1", "1A", "2"}, cardNumbers(got))
}

func TestSortCardNumbersLeadingZeroIsNotNumeric(t *testing.T) {
	// "01" does not round-trip, so the pair compares as strings
	rows := []models.CardRow{
		row(1, "10", "A", "Team", "S"),
		row(2, "01", "B", "Team", "S"),
	}

	got := Sort(rows, ColCardNumber, Ascending, false)
	assert.Equal(t, []string{"01", "10"}, cardNumbers(got))
}

func TestSortPrintRunAbsentAlwaysLast(t *testing.T) {
	r1 := row(1, "1", "A", "Team", "S")
	r2 := row(2, "2", "B", "Team", "S")
	r2.PrintRun = intPtr(50)
	r3 := row(3, "3", "C", "Team", "S")
	r3.PrintRun = intPtr(10)
	rows := []models.CardRow{r1, r2, r3}

	asc := Sort(rows, ColPrintRun, Ascending, false)
	assert.Equal(t, []string{"3", "2", "1"}, cardNumbers(asc))

	desc := Sort(rows, ColPrintRun, Descending, false)
	assert.Equal(t, []string{"2", "3", "1"}, cardNumbers(desc))
}

func TestSortBooleanAscendingTrueFirst(t *testing.T) {
	r1 := row(1, "1", "A", "Team", "S")
	r2 := row(2, "2", "B", "Team", "S")
	r2.IsAutograph = true
	r3 := row(3, "3", "C", "Team", "S")
	rows := []models.CardRow{r1, r2, r3}

	got := Sort(rows, SortAutograph, Ascending, false)
	require.Equal(t, "2", got[0].CardNumber)
}

func TestSortPlayerNameJoined(t *testing.T) {
	combo := row(1, "1", "Zed", "Team", "S")
	combo.PlayerTeams = append(combo.PlayerTeams, models.PlayerTeam{
		Player: models.Player{FirstName: "Andy", LastName: "Ace"},
		Team:   models.Team{ID: 7, Name: "Other"},
	})
	solo := row(2, "2", "Mike", "Team", "S")
	rows := []models.CardRow{combo, solo}

	// "Zed Test, Andy Ace" > "Mike Test"
	got := Sort(rows, ColPlayer, Ascending, false)
	assert.Equal(t, []string{"2", "1"}, cardNumbers(got))
}

func TestSortColorByDisplayName(t *testing.T) {
	r1 := row(1, "1", "A", "Team", "S")
	r1.Color = &models.Color{Name: "Gold", HexColor: "#ffd700"}
	r2 := row(2, "2", "B", "Team", "S")
	r2.Color = &models.Color{Name: "Black", HexColor: "#000000"}
	rows := []models.CardRow{r1, r2}

	got := Sort(rows, ColColor, Ascending, false)
	assert.Equal(t, []string{"2", "1"}, cardNumbers(got))
}

func TestSortTieBreakChain(t *testing.T) {
	// same print run everywhere: ties fall through series name then
	// card number
	r1 := ownedRow(1, "10", "A", "Team", "Zeta", models.OwnedDetails{})
	r1.PrintRun = intPtr(25)
	r2 := row(2, "2", "B", "Team", "Alpha")
	r2.PrintRun = intPtr(25)
	r3 := row(3, "1", "C", "Team", "Alpha")
	r3.PrintRun = intPtr(25)
	rows := []models.CardRow{r1, r2, r3}

	got := Sort(rows, ColPrintRun, Ascending, false)
	assert.Equal(t, []string{"1", "2", "10"}, cardNumbers(got))
}

func TestSortStability(t *testing.T) {
	rows := []models.CardRow{
		row(1, "3", "A", "Team", "S"),
		row(2, "1", "B", "Team", "S"),
		row(3, "2", "C", "Team", "S"),
	}

	once := Sort(rows, ColCardNumber, Ascending, false)
	twice := Sort(once, ColCardNumber, Ascending, false)
	require.Equal(t, once, twice)
}

func TestSortServerPaginatedIsNoOp(t *testing.T) {
	rows := []models.CardRow{
		row(1, "9", "A", "Team", "S"),
		row(2, "1", "B", "Team", "S"),
	}

	got := Sort(rows, ColCardNumber, Ascending, true)
	assert.Equal(t, []string{"9", "1"}, cardNumbers(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := []models.CardRow{
		row(1, "3", "A", "Team", "S"),
		row(2, "1", "B", "Team", "S"),
	}
	Sort(rows, ColCardNumber, Ascending, false)
	assert.Equal(t, []string{"3", "1"}, cardNumbers(rows))
}

func TestSortMalformedRows(t *testing.T) {
	bare := models.CardRow{Card: models.Card{ID: 9, CardNumber: "9"}}
	full := row(1, "1", "A", "Team", "S")

	assert.NotPanics(t, func() {
		Sort([]models.CardRow{bare, full}, ColPlayer, Ascending, false)
		Sort([]models.CardRow{bare, full}, ColSeries, Descending, false)
		Sort([]models.CardRow{bare, full}, ColPrintRun, Ascending, false)
	})
}
