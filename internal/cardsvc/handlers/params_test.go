package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	"github.com/stretchr/testify/assert"
)

func TestParseTeamIds(t *testing.T) {
	assert.Nil(t, parseTeamIds(""))
	assert.Equal(t, []int64{3, 14}, parseTeamIds("3,14"))
	assert.Equal(t, []int64{3, 14}, parseTeamIds(" 3 , junk , 14 "))
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		raw  string
		want table.ColumnID
	}{
		{"series", table.ColSeries},
		{"is_rookie", table.SortRookie},
		{"attributes", ""}, // registry column but not sortable
		{"bogus", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSortField(tt.raw), "sort=%q", tt.raw)
	}
}

func TestParseTableParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/cards", nil)
	p := parseTableParams(r, table.ViewCatalog)

	assert.Equal(t, table.ViewCatalog, p.Mode)
	assert.Equal(t, table.Ascending, p.Dir)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, defaultPageSize, p.PageSize)
	assert.Equal(t, table.StatNone, p.Filters.Stat)
}

func TestParseTableParamsClampsPageSize(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/cards?page_size=999999&page=-3", nil)
	p := parseTableParams(r, table.ViewCatalog)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, defaultPageSize, p.PageSize)
}
