package store

import (
	"context"
	"fmt"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CardStore struct {
	db *pgxpool.Pool
}

func NewCardStore(db *pgxpool.Pool) *CardStore {
	return &CardStore{db: db}
}

// ListCards returns the catalog projection, capped. All filtering and
// sorting happens client side on this projection.
func (s *CardStore) ListCards(ctx context.Context, limit int) ([]models.CardRow, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}

	query := `
		SELECT c.id, c.card_number,
		       c.is_rookie, c.is_autograph, c.is_relic, c.is_short_print,
		       c.print_run,
		       s.id, s.name, s.slug, s.set_name, s.year, COALESCE(s.production_code, ''),
		       col.name, col.hex_color
		FROM cards c
		JOIN series s ON s.id = c.series_id
		LEFT JOIN colors col ON col.id = c.color_id
		ORDER BY s.name, c.card_number
		LIMIT $1
	`

	pgRows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer pgRows.Close()

	var rows []models.CardRow
	byID := make(map[int64]int)
	for pgRows.Next() {
		row, err := scanCard(pgRows)
		if err != nil {
			return nil, err
		}
		byID[row.ID] = len(rows)
		rows = append(rows, row)
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	if err := s.attachPlayerTeams(ctx, rows, byID); err != nil {
		return nil, err
	}

	return rows, nil
}

// GetCard returns one catalog card with its relations, nil when the
// id is unknown.
func (s *CardStore) GetCard(ctx context.Context, id int64) (*models.CardRow, error) {
	query := `
		SELECT c.id, c.card_number,
		       c.is_rookie, c.is_autograph, c.is_relic, c.is_short_print,
		       c.print_run,
		       s.id, s.name, s.slug, s.set_name, s.year, COALESCE(s.production_code, ''),
		       col.name, col.hex_color
		FROM cards c
		JOIN series s ON s.id = c.series_id
		LEFT JOIN colors col ON col.id = c.color_id
		WHERE c.id = $1
		LIMIT 1
	`

	pgRows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}
	defer pgRows.Close()

	if !pgRows.Next() {
		if err := pgRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get card %d: %w", id, err)
		}
		return nil, nil
	}
	row, err := scanCard(pgRows)
	if err != nil {
		return nil, err
	}
	pgRows.Close()

	rows := []models.CardRow{row}
	if err := s.attachPlayerTeams(ctx, rows, map[int64]int{row.ID: 0}); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func scanCard(pgRows pgx.Rows) (models.CardRow, error) {
	var (
		row       models.CardRow
		series    models.Series
		colorName *string
		colorHex  *string
	)
	err := pgRows.Scan(
		&row.ID,
		&row.CardNumber,
		&row.IsRookie,
		&row.IsAutograph,
		&row.IsRelic,
		&row.IsShortPrint,
		&row.PrintRun,
		&series.ID,
		&series.Name,
		&series.Slug,
		&series.SetName,
		&series.Year,
		&series.ProductionCode,
		&colorName,
		&colorHex,
	)
	if err != nil {
		return models.CardRow{}, fmt.Errorf("failed to scan card: %w", err)
	}
	row.Series = &series
	if colorName != nil {
		row.Color = &models.Color{Name: *colorName}
		if colorHex != nil {
			row.Color.HexColor = *colorHex
		}
	}
	return row, nil
}

// attachPlayerTeams loads the player/team pairings for every card in
// rows, ordered the way the card lists them.
func (s *CardStore) attachPlayerTeams(ctx context.Context, rows []models.CardRow, byID map[int64]int) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query := `
		SELECT cpt.card_id,
		       p.id, p.first_name, p.last_name, COALESCE(p.display_name, ''),
		       t.id, t.name, t.abbreviation,
		       COALESCE(t.primary_color, ''), COALESCE(t.secondary_color, '')
		FROM card_player_teams cpt
		JOIN players p ON p.id = cpt.player_id
		JOIN teams t ON t.id = cpt.team_id
		WHERE cpt.card_id = ANY($1)
		ORDER BY cpt.card_id, cpt.sort_order
	`

	pgRows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load player teams: %w", err)
	}
	defer pgRows.Close()

	for pgRows.Next() {
		var (
			cardID int64
			pt     models.PlayerTeam
		)
		err := pgRows.Scan(
			&cardID,
			&pt.Player.ID,
			&pt.Player.FirstName,
			&pt.Player.LastName,
			&pt.Player.DisplayName,
			&pt.Team.ID,
			&pt.Team.Name,
			&pt.Team.Abbreviation,
			&pt.Team.PrimaryColor,
			&pt.Team.SecondaryColor,
		)
		if err != nil {
			return fmt.Errorf("failed to scan player team: %w", err)
		}
		if idx, ok := byID[cardID]; ok {
			rows[idx].PlayerTeams = append(rows[idx].PlayerTeams, pt)
		}
	}
	if err := pgRows.Err(); err != nil {
		return fmt.Errorf("failed to read player teams: %w", err)
	}
	return nil
}
