package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Boolean attribute sort keys. Not registry columns; header clicks on
// the attribute chips sort by the individual flag.
const (
	SortRookie     ColumnID = "is_rookie"
	SortAutograph  ColumnID = "is_autograph"
	SortRelic      ColumnID = "is_relic"
	SortShortPrint ColumnID = "is_short_print"
)

// tieBreak is the fixed fallback chain applied when the primary key
// ties, so re-renders are stable. The primary key is skipped when it
// appears in the chain.
var tieBreak = []ColumnID{ColSeries, ColCardNumber, ColPlayer}

// Sort returns the rows in a stable total order by the given field.
// When serverPaginated is set the upstream order is trusted and the
// rows come back untouched, avoiding visual jumps during incremental
// loads. Never mutates the input.
func Sort(rows []models.CardRow, field ColumnID, dir Direction, serverPaginated bool) []models.CardRow {
	if serverPaginated {
		return rows
	}
	out := make([]models.CardRow, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		// absent numeric values land last in both directions
		aAbs, bAbs := absentNumeric(a, field), absentNumeric(b, field)
		if aAbs != bAbs {
			return bAbs
		}

		if !aAbs { // both present, aAbs == bAbs here
			if c := compareField(a, b, field); c != 0 {
				if dir == Descending {
					return c > 0
				}
				return c < 0
			}
		}

		// tie-break chain is always ascending, independent of the
		// primary direction, so ties land identically either way
		for _, tb := range tieBreak {
			if tb == field {
				continue
			}
			if c := compareField(a, b, tb); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}

// absentNumeric reports whether the row has no value for a numeric
// sort field.
func absentNumeric(r models.CardRow, field ColumnID) bool {
	switch field {
	case ColPrintRun:
		return r.PrintRun == nil
	case ColSerialNumber:
		return r.Owned == nil || r.Owned.SerialNumber == nil
	case ColPurchasePrice:
		return r.Owned == nil || r.Owned.PurchasePrice == nil
	case ColEstimatedValue:
		return r.Owned == nil || r.Owned.EstimatedValue == nil
	case ColCurrentValue:
		return r.Owned == nil || r.Owned.CurrentValue == nil
	default:
		return false
	}
}

// compareField orders two rows on a single column under ascending
// semantics. Absent numeric operands are resolved by Sort before this
// is called; here both sides are known present.
func compareField(a, b models.CardRow, field ColumnID) int {
	switch field {
	case ColCardNumber:
		return compareCardNumbers(a.CardNumber, b.CardNumber)
	case ColPrintRun:
		return compareInt(*a.PrintRun, *b.PrintRun)
	case ColSerialNumber:
		return compareInt(*a.Owned.SerialNumber, *b.Owned.SerialNumber)
	case ColOwned:
		return compareInt(ownedCount(a), ownedCount(b))
	case ColPurchasePrice:
		return a.Owned.PurchasePrice.Cmp(*b.Owned.PurchasePrice)
	case ColEstimatedValue:
		return a.Owned.EstimatedValue.Cmp(*b.Owned.EstimatedValue)
	case ColCurrentValue:
		return a.Owned.CurrentValue.Cmp(*b.Owned.CurrentValue)
	case SortRookie:
		return compareBool(a.IsRookie, b.IsRookie)
	case SortAutograph:
		return compareBool(a.IsAutograph, b.IsAutograph)
	case SortRelic:
		return compareBool(a.IsRelic, b.IsRelic)
	case SortShortPrint:
		return compareBool(a.IsShortPrint, b.IsShortPrint)
	case ColPlayer:
		return compareFold(a.PlayerNames(), b.PlayerNames())
	case ColTeam:
		return compareFold(a.TeamNames(), b.TeamNames())
	case ColSeries:
		return compareFold(a.SeriesName(), b.SeriesName())
	case ColColor:
		return compareFold(a.ColorName(), b.ColorName())
	default:
		return compareFold(stringField(a, field), stringField(b, field))
	}
}

// compareCardNumbers compares numerically only when both operands
// round-trip exactly through an integer (no leading zeros, no suffix
// letters). "1, 2, 10" orders numerically while "1A, 1B" falls back
// to a case-insensitive string compare, where "1" < "1A".
func compareCardNumbers(a, b string) int {
	an, aok := exactInt(a)
	bn, bok := exactInt(b)
	if aok && bok {
		return compareInt(an, bn)
	}
	return compareFold(a, b)
}

func exactInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareBool orders true before false on ascending: "most
// interesting first", not the naive false<true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func ownedCount(r models.CardRow) int {
	if r.Owned == nil {
		return 0
	}
	return r.Owned.OwnedCount
}

// stringField resolves the remaining sortable columns to raw strings,
// missing values as "".
func stringField(r models.CardRow, field ColumnID) string {
	switch field {
	case ColLocation:
		if r.Owned != nil {
			return r.Owned.LocationName
		}
	case ColGrade:
		if r.Owned != nil {
			return r.Owned.Grade
		}
	case ColNotes:
		if r.Owned != nil {
			return r.Owned.Notes
		}
	}
	return ""
}
