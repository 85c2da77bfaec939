package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Player struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name,omitempty"`
}

// Name returns the display name, falling back to "First Last".
func (p Player) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type Team struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}

// PlayerTeam is one player/team pairing on a card. Multi-player
// combo cards carry more than one.
type PlayerTeam struct {
	Player Player `json:"player"`
	Team   Team   `json:"team"`
}

type Series struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	SetName        string `json:"set_name"`
	Year           int    `json:"year"`
	ProductionCode string `json:"production_code,omitempty"`
}

// Color is the parallel/variant descriptor of a card.
type Color struct {
	Name     string `json:"name"`
	HexColor string `json:"hex_color,omitempty"`
}

// Card is the catalog projection shared by every owner of a card.
type Card struct {
	ID           int64        `json:"id"`
	CardNumber   string       `json:"card_number"`
	PlayerTeams  []PlayerTeam `json:"player_teams"`
	Series       *Series      `json:"series,omitempty"`
	Color        *Color       `json:"color,omitempty"`
	PrintRun     *int         `json:"print_run,omitempty"`
	IsRookie     bool         `json:"is_rookie"`
	IsAutograph  bool         `json:"is_autograph"`
	IsRelic      bool         `json:"is_relic"`
	IsShortPrint bool         `json:"is_short_print"`
}

// OwnedDetails carries the owner-specific fields of a collection view.
type OwnedDetails struct {
	UserCardID     int64            `json:"user_card_id"`
	SerialNumber   *int             `json:"serial_number,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	CurrentValue   *decimal.Decimal `json:"current_value,omitempty"`
	LocationName   string           `json:"location_name,omitempty"`
	Grade          string           `json:"grade,omitempty"`
	GradingAgency  string           `json:"grading_agency,omitempty"`
	IsFavorite     bool             `json:"is_favorite"`
	Notes          string           `json:"notes,omitempty"`
	OwnedCount     int              `json:"owned_count"`
}

// CardRow is what the table engine consumes. Owned is nil in catalog
// view and set in collection and list views.
type CardRow struct {
	Card
	Owned *OwnedDetails `json:"owned,omitempty"`
}

// PlayerNames joins the display names of every player on the card.
// Empty when the card has no player relations.
func (r CardRow) PlayerNames() string {
	if len(r.PlayerTeams) == 0 {
		return ""
	}
	names := make([]string, 0, len(r.PlayerTeams))
	for _, pt := range r.PlayerTeams {
		if n := pt.Player.Name(); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}

// TeamNames joins the team names of every player/team pairing.
func (r CardRow) TeamNames() string {
	if len(r.PlayerTeams) == 0 {
		return ""
	}
	names := make([]string, 0, len(r.PlayerTeams))
	for _, pt := range r.PlayerTeams {
		if pt.Team.Name != "" {
			names = append(names, pt.Team.Name)
		}
	}
	return strings.Join(names, ", ")
}

func (r CardRow) SeriesName() string {
	if r.Series == nil {
		return ""
	}
	return r.Series.Name
}

func (r CardRow) ColorName() string {
	if r.Color == nil {
		return ""
	}
	return r.Color.Name
}

// PrintRunDisplay formats the numbered-parallel denominator as
// "/<printRun>" or "<serial>/<printRun>" when a serial is owned.
func (r CardRow) PrintRunDisplay() string {
	if r.PrintRun == nil {
		return ""
	}
	run := strconv.Itoa(*r.PrintRun)
	if r.Owned != nil && r.Owned.SerialNumber != nil {
		return strconv.Itoa(*r.Owned.SerialNumber) + "/" + run
	}
	return "/" + run
}
