package table

import (
	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/shopspring/decimal"
)

func intPtr(n int) *int { return &n }

func moneyPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func row(id int64, number, player, team, series string) models.CardRow {
	return models.CardRow{
		Card: models.Card{
			ID:         id,
			CardNumber: number,
			PlayerTeams: []models.PlayerTeam{
				{
					Player: models.Player{FirstName: player, LastName: "Test"},
					Team:   models.Team{ID: id, Name: team, Abbreviation: team[:min(3, len(team))]},
				},
			},
			Series: &models.Series{Name: series, SetName: "2024 Test Set", Year: 2024},
		},
	}
}

func ownedRow(id int64, number, player, team, series string, od models.OwnedDetails) models.CardRow {
	r := row(id, number, player, team, series)
	r.Owned = &od
	return r
}

func cardNumbers(rows []models.CardRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.CardNumber
	}
	return out
}
