package table

import (
	"strconv"
	"strings"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
)

// StatFilter is an exclusive single-attribute predicate.
type StatFilter string

const (
	StatNone      StatFilter = ""
	StatRookie    StatFilter = "rookie"
	StatAutograph StatFilter = "autograph"
	StatRelic     StatFilter = "relic"
	StatNumbered  StatFilter = "numbered"
)

// StructuralFilters are the non-text filters a hosting page can apply.
type StructuralFilters struct {
	TeamIds []int64
	Stat    StatFilter
}

// Filter returns the rows matching the free-text query and the
// structural filters, composed with logical AND. Pure: never mutates
// the input and is idempotent for fixed arguments.
func Filter(rows []models.CardRow, query string, f StructuralFilters, mode ViewMode) []models.CardRow {
	q := strings.ToLower(strings.TrimSpace(query))
	teamSet := make(map[int64]bool, len(f.TeamIds))
	for _, id := range f.TeamIds {
		teamSet[id] = true
	}

	out := make([]models.CardRow, 0, len(rows))
	for _, row := range rows {
		if q != "" && !matchesQuery(row, q, mode) {
			continue
		}
		if len(teamSet) > 0 && !matchesTeams(row, teamSet) {
			continue
		}
		if !matchesStat(row, f.Stat) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matchesQuery does a case-insensitive substring match across the
// searchable fields. Attribute flags contribute natural-language
// keywords so users can type "auto" instead of toggling a chip.
func matchesQuery(row models.CardRow, q string, mode ViewMode) bool {
	if contains(row.CardNumber, q) {
		return true
	}
	for _, pt := range row.PlayerTeams {
		if contains(pt.Player.FirstName, q) || contains(pt.Player.LastName, q) ||
			contains(pt.Player.DisplayName, q) {
			return true
		}
		if contains(pt.Team.Name, q) || contains(pt.Team.Abbreviation, q) {
			return true
		}
	}
	if row.Series != nil && contains(row.Series.Name, q) {
		return true
	}
	for _, kw := range attributeKeywords(row.Card) {
		if strings.Contains(kw, q) {
			return true
		}
	}
	if mode.ShowsOwned() && row.Owned != nil {
		o := row.Owned
		if contains(o.Notes, q) || contains(o.LocationName, q) || contains(o.GradingAgency, q) {
			return true
		}
		if o.SerialNumber != nil && strings.Contains(strconv.Itoa(*o.SerialNumber), q) {
			return true
		}
		if o.PurchasePrice != nil && strings.Contains(o.PurchasePrice.String(), q) {
			return true
		}
		if o.EstimatedValue != nil && strings.Contains(o.EstimatedValue.String(), q) {
			return true
		}
		if o.CurrentValue != nil && strings.Contains(o.CurrentValue.String(), q) {
			return true
		}
	}
	return false
}

// attributeKeywords lists the literal terms that match a card's
// attribute flags.
func attributeKeywords(c models.Card) []string {
	var kws []string
	if c.IsRookie {
		kws = append(kws, "rookie", "rc")
	}
	if c.IsAutograph {
		kws = append(kws, "autograph", "auto")
	}
	if c.IsRelic {
		kws = append(kws, "relic")
	}
	if c.IsShortPrint {
		kws = append(kws, "short print", "sp")
	}
	return kws
}

func matchesTeams(row models.CardRow, teamSet map[int64]bool) bool {
	for _, pt := range row.PlayerTeams {
		if teamSet[pt.Team.ID] {
			return true
		}
	}
	return false
}

func matchesStat(row models.CardRow, stat StatFilter) bool {
	switch stat {
	case StatNone:
		return true
	case StatRookie:
		return row.IsRookie
	case StatAutograph:
		return row.IsAutograph
	case StatRelic:
		return row.IsRelic
	case StatNumbered:
		return row.PrintRun != nil && *row.PrintRun > 0
	default:
		return true
	}
}

func contains(field, q string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), q)
}
