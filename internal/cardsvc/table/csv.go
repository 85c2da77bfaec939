package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/shopspring/decimal"
)

// ExportCSV serializes the already filtered and sorted rows into a
// CSV document whose header mirrors the visible columns exactly, in
// render order. Embedded quotes and separators are escaped per RFC
// 4180. Deterministic for fixed input.
func ExportCSV(rows []models.CardRow, visible []ColumnID) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(visible))
	for _, id := range visible {
		col, ok := Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", id)
		}
		header = append(header, col.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(visible))
	for _, row := range rows {
		for i, id := range visible {
			record[i] = CellValue(row, id)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CellValue renders one column of one row as display text. Malformed
// rows degrade to empty strings, they never abort the export.
func CellValue(row models.CardRow, id ColumnID) string {
	switch id {
	case ColCardNumber:
		return row.CardNumber
	case ColPlayer:
		return row.PlayerNames()
	case ColTeam:
		return row.TeamNames()
	case ColSeries:
		return row.SeriesName()
	case ColColor:
		return row.ColorName()
	case ColPrintRun:
		return row.PrintRunDisplay()
	case ColAttributes:
		return AttributeCodes(row.Card)
	case ColSerialNumber:
		if row.Owned != nil && row.Owned.SerialNumber != nil {
			return strconv.Itoa(*row.Owned.SerialNumber)
		}
	case ColPurchasePrice:
		if row.Owned != nil {
			return FormatCurrency(row.Owned.PurchasePrice)
		}
	case ColEstimatedValue:
		if row.Owned != nil {
			return FormatCurrency(row.Owned.EstimatedValue)
		}
	case ColCurrentValue:
		if row.Owned != nil {
			return FormatCurrency(row.Owned.CurrentValue)
		}
	case ColLocation:
		if row.Owned != nil {
			return row.Owned.LocationName
		}
	case ColGrade:
		if row.Owned != nil {
			if row.Owned.GradingAgency != "" && row.Owned.Grade != "" {
				return row.Owned.GradingAgency + " " + row.Owned.Grade
			}
			return row.Owned.Grade
		}
	case ColNotes:
		if row.Owned != nil {
			return row.Owned.Notes
		}
	case ColOwned:
		if row.Owned != nil {
			return strconv.Itoa(row.Owned.OwnedCount)
		}
	}
	return ""
}

// AttributeCodes renders the card's attribute flags as space-joined
// short codes in canonical order, omitting false flags.
func AttributeCodes(c models.Card) string {
	var codes []string
	if c.IsRookie {
		codes = append(codes, "RC")
	}
	if c.IsAutograph {
		codes = append(codes, "AUTO")
	}
	if c.IsRelic {
		codes = append(codes, "RELIC")
	}
	if c.IsShortPrint {
		codes = append(codes, "SP")
	}
	return strings.Join(codes, " ")
}

// FormatCurrency renders a money value as "$1,234.56". Absent values
// render as the empty string, not "$0.00".
func FormatCurrency(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}
